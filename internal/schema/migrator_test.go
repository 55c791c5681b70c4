package schema

import (
	"reflect"
	"strings"
	"testing"

	"github.com/lensline/eyewear-api/internal/models"
)

func TestEveryProductFieldHasAColumn(t *testing.T) {
	provisioned := map[string]bool{}
	for _, col := range productColumns {
		provisioned[col.Name] = true
	}

	typ := reflect.TypeOf(models.Product{})
	for i := 0; i < typ.NumField(); i++ {
		tag := typ.Field(i).Tag.Get("db")
		if tag == "" || tag == "-" {
			continue
		}
		if provisioned[tag] {
			continue
		}
		if !strings.Contains(createProductsTable, tag) {
			t.Errorf("model field %q has no column in the base table or the column additions", tag)
		}
	}
}

func TestColumnAdditionsAreUniquelyNamed(t *testing.T) {
	seen := map[string]bool{}
	for _, col := range productColumns {
		if seen[col.Name] {
			t.Errorf("column %q appears twice; additions must be independently idempotent", col.Name)
		}
		seen[col.Name] = true
	}
}

func TestEnsureStatementsAreIdempotentByConstruction(t *testing.T) {
	for _, stmt := range []string{createProductsTable, createCommentsTable} {
		if !strings.Contains(stmt, "IF NOT EXISTS") {
			t.Errorf("table statement is not re-runnable: %s", stmt)
		}
	}
	for _, col := range productColumns {
		if col.Name == "" || col.Definition == "" {
			t.Errorf("column addition %+v is incomplete", col)
		}
	}
}
