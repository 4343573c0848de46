package gen

import (
	"fmt"
	"strings"
)

// Hand-curated value tables. Realistic values come from fixed word lists
// drawn through the shared source, so output depends only on the seed.

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael",
	"Linda", "David", "Elizabeth", "William", "Barbara", "Richard", "Susan",
	"Joseph", "Jessica", "Thomas", "Karen", "Charles", "Sarah", "Daniel",
	"Lisa", "Matthew", "Nancy", "Anthony", "Sandra", "Mark", "Ashley",
	"Steven", "Emily", "Andrew", "Amanda", "Kevin", "Melissa", "Brian",
	"Deborah", "Timothy", "Stephanie", "Jason", "Rebecca",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
	"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	"Lee", "Perez", "Thompson", "White", "Harris", "Sanchez", "Clark",
	"Ramirez", "Lewis", "Robinson", "Walker", "Young", "Allen", "King",
}

var emailDomains = []string{
	"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "aol.com",
	"icloud.com", "protonmail.com",
}

var streetSuffixes = []string{
	"St", "Ave", "Blvd", "Dr", "Ln", "Ct", "Pl", "Way", "Rd", "Ter",
}

var streetNames = []string{
	"Maple", "Oak", "Cedar", "Elm", "Pine", "Washington", "Lake", "Hill",
	"Park", "Main", "Church", "Spring", "River", "Sunset", "Highland",
	"Meadow", "Forest", "Willow", "Birch", "Chestnut",
}

var cities = []string{
	"Springfield", "Riverside", "Franklin", "Greenville", "Bristol",
	"Clinton", "Fairview", "Salem", "Madison", "Georgetown", "Arlington",
	"Ashland", "Dover", "Hudson", "Kingston", "Milton", "Newport",
	"Oxford", "Burlington", "Manchester",
}

var stateAbbrs = []string{
	"AL", "AZ", "CA", "CO", "CT", "FL", "GA", "IL", "IN", "KY", "MA", "MD",
	"MI", "MN", "MO", "NC", "NJ", "NV", "NY", "OH", "OR", "PA", "TN", "TX",
	"UT", "VA", "WA", "WI",
}

var loremWords = []string{
	"atlas", "beacon", "cascade", "drift", "ember", "flux", "grove",
	"harbor", "ion", "juniper", "kinetic", "lumen", "meridian", "nimbus",
	"onyx", "prism", "quartz", "ridge", "summit", "terra", "umbra",
	"vertex", "willow", "zenith", "arc", "bloom", "cove", "dawn", "echo",
	"fjord", "glint", "haze", "isle", "jade", "karst", "loft", "mist",
	"nova", "opal", "pulse",
}

var productBuzzwords = []string{
	"Pro", "Max", "Elite", "Prime", "Ultra", "Plus", "Classic", "Edge",
	"Core", "Flex", "Lite", "Nova", "Air", "One", "Go",
}

// FirstName draws a first name from the fixed table.
func (s *Source) FirstName() string {
	return firstNames[s.Intn(len(firstNames))]
}

// LastName draws a last name from the fixed table.
func (s *Source) LastName() string {
	return lastNames[s.Intn(len(lastNames))]
}

// Username builds a plausible login handle from name fragments.
func (s *Source) Username() string {
	first := strings.ToLower(s.FirstName())
	last := strings.ToLower(s.LastName())
	switch s.Intn(3) {
	case 0:
		return first[:1] + last
	case 1:
		return first + "." + last
	default:
		return first + last[:1]
	}
}

// EmailDomain draws a free mail provider domain.
func (s *Source) EmailDomain() string {
	return emailDomains[s.Intn(len(emailDomains))]
}

// PhoneNumber builds a US-shaped phone number.
func (s *Source) PhoneNumber() string {
	return fmt.Sprintf("(%03d) %03d-%04d",
		s.IntBetween(200, 999), s.IntBetween(200, 999), s.Intn(10000))
}

// Word draws a single lorem word.
func (s *Source) Word() string {
	return loremWords[s.Intn(len(loremWords))]
}

// Sentence builds a lorem sentence of n words.
func (s *Source) Sentence(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = s.Word()
	}
	sentence := strings.Join(words, " ") + "."
	return strings.ToUpper(sentence[:1]) + sentence[1:]
}

// ProductName builds a three-token display name in the shape the query layer
// expects: two capitalized words plus a marketing suffix.
func (s *Source) ProductName() string {
	return fmt.Sprintf("%s %s %s",
		capitalize(s.Word()), capitalize(s.Word()),
		productBuzzwords[s.Intn(len(productBuzzwords))])
}

// StreetAddress builds a street line like "742 Maple Ave".
func (s *Source) StreetAddress() string {
	return fmt.Sprintf("%d %s %s",
		s.IntBetween(1, 9999),
		streetNames[s.Intn(len(streetNames))],
		streetSuffixes[s.Intn(len(streetSuffixes))])
}

// City draws a city name.
func (s *Source) City() string {
	return cities[s.Intn(len(cities))]
}

// StateAbbr draws a two-letter state code.
func (s *Source) StateAbbr() string {
	return stateAbbrs[s.Intn(len(stateAbbrs))]
}

// ZipCode builds a five-digit ZIP.
func (s *Source) ZipCode() string {
	return fmt.Sprintf("%05d", s.IntBetween(10000, 99999))
}

func capitalize(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + w[1:]
}
