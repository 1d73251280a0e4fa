package activity_test

import (
	"testing"

	"github.com/limbo/habitgrid/internal/activity"
	"github.com/stretchr/testify/assert"
)

func TestGraphQLEndpoint(t *testing.T) {
	testCases := []struct {
		Base     string
		Endpoint string
	}{
		{Base: "https://api.github.com", Endpoint: "https://api.github.com/graphql"},
		{Base: "https://api.github.com/", Endpoint: "https://api.github.com/graphql"},
		{Base: "https://ghe.corp.example/api/v3", Endpoint: "https://ghe.corp.example/api/graphql"},
		{Base: "https://ghe.corp.example/api", Endpoint: "https://ghe.corp.example/graphql"},
		{Base: "not a url", Endpoint: "https://api.github.com/graphql"},
	}
	for _, tc := range testCases {
		t.Run(tc.Base, func(t *testing.T) {
			assert.Equal(t, tc.Endpoint, activity.GraphQLEndpoint(tc.Base))
		})
	}
}
