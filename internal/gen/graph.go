package gen

import (
	"fmt"
	"strings"

	"datagen-service/internal/models"
)

// GraphBounds limits the graph export to the first N users, first M
// products, and a maximum number of purchase edges, keeping the script
// tractable for bulk import.
type GraphBounds struct {
	Users    int
	Products int
	Edges    int
}

// BuildGraphScript renders the property-graph projection: an idempotent
// Cypher import script over the bounded subset of already-generated
// entities. It draws nothing from the value stream; every statement is
// re-derived from the relational facts, with purchase edges aggregated to
// one edge per (user, product) pair carrying the co-occurrence count.
func BuildGraphScript(users []models.User, products []models.Product, cats []models.Category, orders []models.Order, orderItems []models.OrderItem, bounds GraphBounds) string {
	var b strings.Builder
	b.WriteString("// Auto-generated Neo4j import\n\n")

	for _, c := range cats {
		fmt.Fprintf(&b, "MERGE (:Category {name: %s});\n", cypherString(c.CategoryName))
	}
	b.WriteString("\n")

	userSubset := users
	if bounds.Users < len(userSubset) {
		userSubset = userSubset[:bounds.Users]
	}
	for _, u := range userSubset {
		fmt.Fprintf(&b, "MERGE (:User {user_id: %d, name: %s});\n", u.UserID, cypherString(u.FirstName))
	}
	b.WriteString("\n")

	productSubset := products
	if bounds.Products < len(productSubset) {
		productSubset = productSubset[:bounds.Products]
	}
	for _, p := range productSubset {
		fmt.Fprintf(&b, "MERGE (:Product {product_id: %d, name: %s, price: %.2f});\n",
			p.ProductID, cypherString(p.ProductName), p.BasePrice)
	}
	b.WriteString("\n")

	names := CategoryNameByID(cats)
	for _, p := range productSubset {
		fmt.Fprintf(&b,
			"MATCH (p:Product {product_id: %d}), (c:Category {name: %s}) MERGE (p)-[:BELONGS_TO]->(c);\n",
			p.ProductID, cypherString(names[p.CategoryID]))
	}
	b.WriteString("\n")

	for _, edge := range PurchaseEdges(orders, orderItems, bounds) {
		fmt.Fprintf(&b,
			"MATCH (u:User {user_id: %d}), (p:Product {product_id: %d}) MERGE (u)-[:PURCHASED {count: %d}]->(p);\n",
			edge.UserID, edge.ProductID, edge.Count)
	}

	return b.String()
}

// PurchaseEdge is the aggregated purchase relationship between a user and a
// product within the bounded export subset.
type PurchaseEdge struct {
	UserID    int64
	ProductID int64
	Count     int
}

// PurchaseEdges counts, per (user, product) pair inside the bounds, how many
// order items link that user to that product. Edges are emitted in
// first-occurrence order so the script is deterministic, capped at
// bounds.Edges.
func PurchaseEdges(orders []models.Order, orderItems []models.OrderItem, bounds GraphBounds) []PurchaseEdge {
	userByOrder := make(map[int64]int64, len(orders))
	for _, o := range orders {
		userByOrder[o.OrderID] = o.UserID
	}

	type pair struct{ userID, productID int64 }
	counts := make(map[pair]int)
	var seen []pair

	for _, oi := range orderItems {
		userID, ok := userByOrder[oi.OrderID]
		if !ok || userID > int64(bounds.Users) || oi.ProductID > int64(bounds.Products) {
			continue
		}
		key := pair{userID, oi.ProductID}
		if _, dup := counts[key]; !dup {
			seen = append(seen, key)
		}
		counts[key]++
	}

	if bounds.Edges > 0 && len(seen) > bounds.Edges {
		seen = seen[:bounds.Edges]
	}
	edges := make([]PurchaseEdge, 0, len(seen))
	for _, key := range seen {
		edges = append(edges, PurchaseEdge{UserID: key.userID, ProductID: key.productID, Count: counts[key]})
	}
	return edges
}

// cypherString quotes a text value for embedding in a Cypher statement.
// Backslashes are escaped before quotes so the generated script stays
// syntactically valid for any input.
func cypherString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
