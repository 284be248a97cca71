package main

import "testing"

func TestGetEnvFallback(t *testing.T) {
	if got := getEnv("CRM_TEST_UNSET_KEY", "fallback"); got != "fallback" {
		t.Errorf("Expected fallback, got %q", got)
	}

	t.Setenv("CRM_TEST_KEY", "set")
	if got := getEnv("CRM_TEST_KEY", "fallback"); got != "set" {
		t.Errorf("Expected set, got %q", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	if got := getEnvBool("CRM_TEST_UNSET_KEY", true); !got {
		t.Error("Expected fallback true")
	}

	t.Setenv("CRM_TEST_BOOL", "true")
	if !getEnvBool("CRM_TEST_BOOL", false) {
		t.Error("Expected true")
	}

	t.Setenv("CRM_TEST_BOOL", "not-a-bool")
	if !getEnvBool("CRM_TEST_BOOL", true) {
		t.Error("Expected fallback on unparseable value")
	}
}
