package graphutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arlojax/graphon/graphutil"
)

func TestMergeObjects_LaterOverwritesEarlier(t *testing.T) {
	got := graphutil.MergeObjects([]map[string]interface{}{
		{"a": 1, "b": 2},
		{"b": 3, "c": 4},
	})
	assert.Equal(t, map[string]interface{}{"a": 1, "b": 3, "c": 4}, got)
}

func TestMergeArrays_DedupByIdentity(t *testing.T) {
	got := graphutil.MergeArrays([][]int{{1, 2, 3}, {2, 4}}, func(v int) interface{} { return v })
	assert.Equal(t, []int{1, 2, 3, 4}, got)
}

func TestMergeArrays_NilIdentityConcatenates(t *testing.T) {
	got := graphutil.MergeArrays([][]int{{1, 2}, {2, 3}}, nil)
	assert.Equal(t, []int{1, 2, 2, 3}, got)
}

func TestClone_DeepCopiesNestedPlainValues(t *testing.T) {
	original := map[string]interface{}{
		"list": []interface{}{1, "two", map[string]interface{}{"nested": true}},
	}
	cloned := graphutil.Clone(original).(map[string]interface{})

	nestedList := cloned["list"].([]interface{})
	nestedMap := nestedList[2].(map[string]interface{})
	nestedMap["nested"] = false

	originalNestedMap := original["list"].([]interface{})[2].(map[string]interface{})
	assert.Equal(t, true, originalNestedMap["nested"])
	assert.Equal(t, false, nestedMap["nested"])
}
