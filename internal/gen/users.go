package gen

import (
	"fmt"
	"time"

	"datagen-service/internal/models"
)

// Fixture user identity. The first generated record is always this user so
// downstream example queries have a stable, non-randomized subject.
const (
	FixtureUserID    = 1
	FixtureUsername  = "sarah"
	FixtureEmail     = "sarah@example.com"
	FixtureFirstName = "Sarah"
	FixtureLastName  = "Johnson"
)

var (
	fixtureCreatedAt = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	fixtureUpdatedAt = time.Date(2026, 2, 20, 14, 0, 0, 0, time.UTC)
)

// GenerateUsers produces count user records. User 1 is the fixed fixture;
// the rest derive username and email from their id to guarantee uniqueness.
func GenerateUsers(src *Source, count int) []models.User {
	users := make([]models.User, 0, count)

	users = append(users, models.User{
		UserID:       FixtureUserID,
		Username:     FixtureUsername,
		Email:        FixtureEmail,
		PasswordHash: src.HexToken(32),
		FirstName:    FixtureFirstName,
		LastName:     FixtureLastName,
		Phone:        src.PhoneNumber(),
		CreatedAt:    fixtureCreatedAt,
		UpdatedAt:    fixtureUpdatedAt,
	})

	for id := int64(2); id <= int64(count); id++ {
		created := src.TimeWithinDays(730, 30)
		users = append(users, models.User{
			UserID:       id,
			Username:     fmt.Sprintf("%s_%d", src.Username(), id),
			Email:        fmt.Sprintf("user%d@%s", id, src.EmailDomain()),
			PasswordHash: src.HexToken(32),
			FirstName:    src.FirstName(),
			LastName:     src.LastName(),
			Phone:        src.PhoneNumber(),
			CreatedAt:    created,
			UpdatedAt:    created.AddDate(0, 0, src.IntBetween(0, 180)),
		})
	}
	return users
}

// GenerateAddresses emits exactly one shipping and one billing address per
// user, in user order, with the shipping address marked default.
func GenerateAddresses(src *Source, users []models.User) []models.Address {
	addresses := make([]models.Address, 0, len(users)*2)
	id := int64(1)
	for _, u := range users {
		for _, addrType := range []string{models.AddressTypeShipping, models.AddressTypeBilling} {
			addresses = append(addresses, models.Address{
				AddressID:   id,
				UserID:      u.UserID,
				AddressType: addrType,
				Street:      src.StreetAddress(),
				City:        src.City(),
				State:       src.StateAbbr(),
				ZipCode:     src.ZipCode(),
				Country:     "US",
				IsDefault:   addrType == models.AddressTypeShipping,
			})
			id++
		}
	}
	return addresses
}
