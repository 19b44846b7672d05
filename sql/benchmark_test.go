package sql

import (
	"testing"
)

// BenchmarkParse benchmarks parsing across representative statements
func BenchmarkParse(b *testing.B) {
	queries := []struct {
		name  string
		query string
	}{
		{"SimpleSelect", "SELECT * FROM users"},
		{"SelectWithWhere", "SELECT * FROM users WHERE age > 30"},
		{"SelectWithOrderBy", "SELECT * FROM users ORDER BY age DESC"},
		{"SelectComplex", "SELECT name, age * 2 + 1 FROM users WHERE age > 25 AND NOT retired ORDER BY name ASC, age DESC"},
		{"CreateTable", "CREATE TABLE users (id INT PRIMARY KEY, name VARCHAR(255) NOT NULL, age INT CHECK (age >= 0), active BOOL)"},
	}

	for _, q := range queries {
		b.Run(q.name, func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				parser := NewParser(q.query)
				_, err := parser.Parse()
				if err != nil {
					b.Fatalf("Parse error: %v", err)
				}
			}
		})
	}
}

// BenchmarkTokenize benchmarks the lexer alone
func BenchmarkTokenize(b *testing.B) {
	input := "SELECT name, age FROM users WHERE age >= 18 AND city = 'Berlin' ORDER BY age DESC"
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Tokenize(input); err != nil {
			b.Fatalf("Tokenize error: %v", err)
		}
	}
}
