package mongodb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"coursehub/internal/domain/contract"
)

func TestBuildSearchFilterAndSort_Defaults(t *testing.T) {
	filter, sort := buildSearchFilterAndSort(&contract.CourseSearchOptions{})

	assert.Equal(t, true, filter["is_published"])
	assert.Nil(t, sort)
	assert.NotContains(t, filter, "category")

	or, ok := filter["$or"].([]bson.M)
	require.True(t, ok)
	require.Len(t, or, 2)
	// An empty query matches everything.
	assert.Equal(t, primitive.Regex{Pattern: "", Options: "i"}, or[0]["course_title"])
	assert.Equal(t, primitive.Regex{Pattern: "", Options: "i"}, or[1]["sub_title"])
}

func TestBuildSearchFilterAndSort_QueryIsEscaped(t *testing.T) {
	filter, _ := buildSearchFilterAndSort(&contract.CourseSearchOptions{Query: "c++ (advanced)"})

	or := filter["$or"].([]bson.M)
	re := or[0]["course_title"].(primitive.Regex)
	assert.Equal(t, `c\+\+ \(advanced\)`, re.Pattern)
	assert.Equal(t, "i", re.Options)
}

func TestBuildSearchFilterAndSort_CategoriesAnchored(t *testing.T) {
	filter, _ := buildSearchFilterAndSort(&contract.CourseSearchOptions{
		Categories: []string{"Programming", "Art"},
	})

	in, ok := filter["category"].(bson.M)
	require.True(t, ok)
	patterns, ok := in["$in"].([]primitive.Regex)
	require.True(t, ok)
	require.Len(t, patterns, 2)
	assert.Equal(t, "^Programming$", patterns[0].Pattern)
	assert.Equal(t, "^Art$", patterns[1].Pattern)
	assert.Equal(t, "i", patterns[0].Options)
}

func TestBuildSearchFilterAndSort_PriceSort(t *testing.T) {
	_, sort := buildSearchFilterAndSort(&contract.CourseSearchOptions{SortByPrice: "lowTohigh"})
	require.Len(t, sort, 1)
	assert.Equal(t, "course_price", sort[0].Key)
	assert.Equal(t, 1, sort[0].Value)

	_, sort = buildSearchFilterAndSort(&contract.CourseSearchOptions{SortByPrice: "highTolow"})
	require.Len(t, sort, 1)
	assert.Equal(t, -1, sort[0].Value)

	_, sort = buildSearchFilterAndSort(&contract.CourseSearchOptions{SortByPrice: "unknown"})
	assert.Nil(t, sort)
}
