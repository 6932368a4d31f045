package provider

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scoutqa/scout/pkg/models"
)

func TestBuildTaskPromptUnauthenticated(t *testing.T) {
	p := BuildTaskPrompt("Add an item to the cart", "Cart shows one item", nil)

	assert.True(t, strings.HasPrefix(p, "IMPORTANT: If at any point you see an error screen, stop and fail the test."))
	assert.Contains(t, p, "Add an item to the cart")
	assert.Contains(t, p, "Expected outcome: Cart shows one item")
	assert.Contains(t, p, `{ "success": true/false`)
	assert.NotContains(t, p, "Email:")
}

func TestBuildTaskPromptWithCredentials(t *testing.T) {
	p := BuildTaskPrompt("Check the dashboard", "", &Credentials{
		Email:    "qa@example.com",
		Password: "hunter2",
		Metadata: map[string]string{"role": "admin", "tenant": "acme"},
	})

	assert.Contains(t, p, "IMPORTANT: Log in before the test using:")
	assert.Contains(t, p, "- Email: qa@example.com")
	assert.Contains(t, p, "- Password: hunter2")
	assert.Contains(t, p, "- Account info: role=admin, tenant=acme")
	assert.Contains(t, p, "Expected outcome: "+DefaultExpectedOutcome)
}

func TestBuildTaskPromptWithReusableProfile(t *testing.T) {
	p := BuildTaskPrompt("Check the dashboard", "Dashboard loads", &Credentials{
		Email:     "qa@example.com",
		Password:  "hunter2",
		ProfileID: "prof-1",
	})

	assert.Contains(t, p, "Reuse the existing authenticated profile/session.")
	assert.Contains(t, p, "Fallback credentials (use only if login is required):")
	assert.NotContains(t, p, "Log in before the test")
}

func TestBuildExplorationPrompt(t *testing.T) {
	p := BuildExplorationPrompt("the checkout flow", nil)

	assert.Contains(t, p, "Explore this application")
	assert.Contains(t, p, "Focus on: the checkout flow")
	assert.Contains(t, p, "happy paths")
	assert.Contains(t, p, "extractedData")
	assert.NotContains(t, p, "Expected outcome:")
}

func TestFactoryResolvesAllProviders(t *testing.T) {
	for _, name := range []string{"hyperbrowser", "browser-use-cloud", "browser-use-local"} {
		t.Run(name, func(t *testing.T) {
			p, err := New(models.BrowserProvider(name))
			assert.NoError(t, err)
			assert.NotNil(t, p)
		})
	}

	_, err := New(models.BrowserProvider("chrome-devtools"))
	assert.Error(t, err)
}
