package cli

import (
	"reflect"
	"testing"

	"github.com/umbcdata/degree-offerings/internal/offering"
)

func TestSortedTitles(t *testing.T) {
	table := offering.Table{
		"Psychology":       nil,
		"biochemistry":     nil,
		"Computer Science": nil,
		"Art":              nil,
		"art":              nil,
	}

	want := []string{"Art", "art", "biochemistry", "Computer Science", "Psychology"}
	if got := sortedTitles(table); !reflect.DeepEqual(got, want) {
		t.Errorf("sortedTitles() = %v, want %v", got, want)
	}
}

func TestOrderedKinds(t *testing.T) {
	rec := offering.Record{
		offering.Minor:       offering.Offered(),
		"Post-Baccalaureate": offering.Offered(),
		offering.Bachelors:   offering.Label("Art"),
		"Associate":          offering.NotOffered,
	}

	want := []offering.Kind{offering.Bachelors, offering.Minor, "Associate", "Post-Baccalaureate"}
	if got := orderedKinds(rec); !reflect.DeepEqual(got, want) {
		t.Errorf("orderedKinds() = %v, want %v", got, want)
	}
}
