package model

import (
	"sort"
	"testing"
)

func TestValidLanguage(t *testing.T) {
	for _, code := range []string{"en", "uk", "zh-CN", "zh-TW", "sw"} {
		if !ValidLanguage(code) {
			t.Errorf("expected %q to be valid", code)
		}
	}
	for _, code := range []string{"", "xx", "EN", "en-US", "zh"} {
		if ValidLanguage(code) {
			t.Errorf("expected %q to be invalid", code)
		}
	}
}

func TestLanguageName(t *testing.T) {
	name, ok := LanguageName("de")
	if !ok || name != "Deutsch" {
		t.Fatalf("expected Deutsch, got %q (ok=%v)", name, ok)
	}
	if _, ok := LanguageName("xx"); ok {
		t.Fatal("expected lookup miss for unknown code")
	}
}

func TestLanguageCodesSorted(t *testing.T) {
	codes := LanguageCodes()
	if len(codes) != 40 {
		t.Fatalf("expected 40 catalog entries, got %d", len(codes))
	}
	if !sort.StringsAreSorted(codes) {
		t.Fatal("expected sorted codes")
	}
}

func TestLanguagesMatchesCatalog(t *testing.T) {
	infos := Languages()
	if len(infos) != len(LanguageCodes()) {
		t.Fatalf("expected %d entries, got %d", len(LanguageCodes()), len(infos))
	}
	for _, info := range infos {
		name, ok := LanguageName(info.Code)
		if !ok || name != info.Name {
			t.Errorf("entry %q does not match catalog", info.Code)
		}
	}
}
