// Package phonebook holds the demo dataset: a company phonebook whose
// entries get listed one page at a time.
package phonebook

import "fmt"

// Entry is one phonebook record.
type Entry struct {
	ID      uint `gorm:"primaryKey"`
	Name    string
	Company string
	Phone   string
	Email   string
}

var companies = []string{
	"Acme Corp", "Globex", "Initech", "Umbrella", "Stark Industries",
	"Wayne Enterprises", "Tyrell Corp", "Wonka Industries",
}

var surnames = []string{
	"Anderson", "Brown", "Chen", "Davis", "Evans", "Fischer", "Garcia",
	"Hansen", "Ivanov", "Jones", "Kim", "Lopez", "Miller", "Nguyen",
	"O'Brien", "Patel", "Quinn", "Rossi", "Schmidt", "Taylor",
}

// Seed generates n deterministic demo entries.
func Seed(n int) []Entry {
	entries := make([]Entry, n)
	for i := range entries {
		entries[i] = Entry{
			ID:      uint(i + 1),
			Name:    fmt.Sprintf("%s, %c.", surnames[i%len(surnames)], 'A'+i/len(surnames)%26),
			Company: companies[i%len(companies)],
			Phone:   fmt.Sprintf("+1 555 %04d", 1000+i),
			Email:   fmt.Sprintf("contact%03d@example.org", i+1),
		}
	}
	return entries
}
