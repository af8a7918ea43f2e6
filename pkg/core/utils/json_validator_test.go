package utils

import "testing"

func TestExtractJSONBlock(t *testing.T) {
	fenced := "```json\n{\"vertical\": \"Retail\"}\n```"
	if got := ExtractJSONBlock(fenced); got != "{\"vertical\": \"Retail\"}" {
		t.Errorf("expected fences stripped, got '%s'", got)
	}

	chatty := "Sure! Here is the analysis:\n{\"vertical\": \"Finance\"} Hope that helps."
	if got := ExtractJSONBlock(chatty); got != "{\"vertical\": \"Finance\"}" {
		t.Errorf("expected braces isolated, got '%s'", got)
	}

	clean := "{\"a\": 1}"
	if got := ExtractJSONBlock(clean); got != clean {
		t.Errorf("expected pass-through, got '%s'", got)
	}

	// No braces at all: hand back the trimmed text so the parse error
	// downstream shows what the model actually said.
	if got := ExtractJSONBlock("  I cannot answer that.  "); got != "I cannot answer that." {
		t.Errorf("expected trimmed text, got '%s'", got)
	}
}

func TestSmartParseFallbackChain(t *testing.T) {
	type payload struct {
		Vertical string  `json:"vertical"`
		Risk     float64 `json:"risk"`
	}

	// Single quotes and trailing comma: repairable.
	var p payload
	if _, err := SmartParse("{'vertical': 'Retail', 'risk': 50000,}", &p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Vertical != "Retail" || p.Risk != 50000 {
		t.Errorf("expected repaired payload, got %+v", p)
	}

	var q payload
	if _, err := SmartParse("not even close", &q); err == nil {
		t.Error("expected error for unparseable input, got nil")
	}
}
