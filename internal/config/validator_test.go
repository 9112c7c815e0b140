package config

import (
	"testing"
)

func TestValidateAcceptsMinimalSettings(t *testing.T) {
	result, err := Validate(map[string]interface{}{
		"remote_config_url": "https://example.com/config.yaml",
	})
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if !result.Valid {
		t.Errorf("minimal settings rejected: %s", result.Summary())
	}
}

func TestValidateRejectsBadChannel(t *testing.T) {
	result, err := Validate(map[string]interface{}{
		"remote_config_url": "https://example.com/config.yaml",
		"mihomo_channel":    "beta",
	})
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if result.Valid {
		t.Fatal("expected channel enum violation")
	}

	found := false
	for _, issue := range result.Issues {
		if issue.Path == "/mihomo_channel" {
			found = true
		}
	}
	if !found {
		t.Errorf("issues %v do not mention /mihomo_channel", result.Issues)
	}
}

func TestValidateRejectsUnknownTopLevelKey(t *testing.T) {
	result, err := Validate(map[string]interface{}{
		"remote_config_url": "https://example.com/config.yaml",
		"remote_config_ur":  "typo",
	})
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if result.Valid {
		t.Fatal("expected unknown-key violation")
	}
}

func TestValidateRejectsWrongType(t *testing.T) {
	result, err := Validate(map[string]interface{}{
		"remote_config_url": "https://example.com/config.yaml",
		"mihomo_config": map[string]interface{}{
			"port": "not-a-number",
		},
	})
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if result.Valid {
		t.Fatal("expected type violation for mihomo_config.port")
	}
}

func TestSummaryIncludesPath(t *testing.T) {
	result := &ValidationResult{
		Issues: []ValidationIssue{
			{Path: "/mihomo_channel", Message: "value must be one of 'stable', 'alpha'", Keyword: "enum"},
		},
	}
	summary := result.Summary()
	if summary != "  - /mihomo_channel: value must be one of 'stable', 'alpha'" {
		t.Errorf("Summary = %q", summary)
	}
}
