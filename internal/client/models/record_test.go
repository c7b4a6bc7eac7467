package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategories_DedupKeepsFirstOrder(t *testing.T) {
	got := NewCategories("food", "rent", "", "food", "travel", "rent")
	assert.Equal(t, Categories{"food", "rent", "travel"}, got)
}

func TestCategories_JSON(t *testing.T) {
	var nilSet Categories
	b, err := json.Marshal(nilSet)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))

	b, err = json.Marshal(Categories{"food"})
	require.NoError(t, err)
	assert.Equal(t, `["food"]`, string(b))

	var c Categories
	require.NoError(t, json.Unmarshal([]byte(`["a","b","a"]`), &c))
	assert.Equal(t, Categories{"a", "b"}, c)

	require.NoError(t, json.Unmarshal([]byte(`null`), &c))
	assert.Equal(t, Categories{}, c)
}

func TestUserPayload_Record(t *testing.T) {
	var resp LoginResponse
	body := `{
		"token": "t1",
		"message": "Welcome back",
		"user": {
			"_id": "u1",
			"fullName": "Ann",
			"email": "a@b.com",
			"isAdmin": true,
			"categories": ["food"],
			"createdAt": "2024-05-01T10:00:00Z",
			"updatedAt": "not-a-date"
		}
	}`
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.NotNil(t, resp.User)

	want := Record{
		ID:         "u1",
		FullName:   "Ann",
		Email:      "a@b.com",
		IsAdmin:    true,
		Categories: Categories{"food"},
		CreatedAt:  time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	if diff := cmp.Diff(want, resp.User.Record()); diff != "" {
		t.Fatalf("record mismatch (-want +got):\n%s", diff)
	}
}

func TestUserPayload_Record_DefaultsCategories(t *testing.T) {
	r := UserPayload{ID: "u1"}.Record()
	assert.NotNil(t, r.Categories)
	assert.Empty(t, r.Categories)
}

func TestRegisterRequest_NullImage(t *testing.T) {
	b, err := json.Marshal(RegisterRequest{FullName: "Ann", Email: "a@b.com", Password: "longenough"})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"profileImageUrl":null`)

	url := "https://cdn/x.png"
	b, err = json.Marshal(RegisterRequest{ProfileImageURL: &url})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"profileImageUrl":"https://cdn/x.png"`)
}

func TestRecord_CloneIsIndependent(t *testing.T) {
	r := Record{Categories: Categories{"a"}}
	c := r.Clone()
	c.Categories[0] = "b"
	assert.Equal(t, "a", r.Categories[0])
}
