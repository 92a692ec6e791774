package detect

import "testing"

func TestSniff_GoTestJSON(t *testing.T) {
	input := `{"Time":"2024-01-01T00:00:00Z","Action":"start","Package":"example.com/pkg"}` + "\n"
	if got := Sniff([]byte(input)); got != GoTestJSON {
		t.Errorf("expected GoTestJSON, got %v", got)
	}
}

func TestSniff_GoTestJSON_OutputAction(t *testing.T) {
	input := `{"Time":"2024-01-01T00:00:00Z","Action":"output","Package":"example.com/pkg","Output":"=== RUN TestFoo\n"}` + "\n"
	if got := Sniff([]byte(input)); got != GoTestJSON {
		t.Errorf("expected GoTestJSON, got %v", got)
	}
}

func TestSniff_OnlyFirstLineMatters(t *testing.T) {
	input := `{"Action":"run","Package":"p","Test":"TestA"}` + "\nnot json at all\n"
	if got := Sniff([]byte(input)); got != GoTestJSON {
		t.Errorf("expected GoTestJSON, got %v", got)
	}
}

func TestSniff_Empty(t *testing.T) {
	if got := Sniff([]byte("")); got != Unknown {
		t.Errorf("expected Unknown for empty, got %v", got)
	}
}

func TestSniff_PlainText(t *testing.T) {
	if got := Sniff([]byte("=== RUN   TestFoo\n--- PASS: TestFoo (0.00s)\n")); got != Unknown {
		t.Errorf("expected Unknown for plain go test output, got %v", got)
	}
}

func TestSniff_InvalidJSON(t *testing.T) {
	if got := Sniff([]byte("{invalid")); got != Unknown {
		t.Errorf("expected Unknown for invalid JSON, got %v", got)
	}
}

func TestSniff_OtherJSON(t *testing.T) {
	input := `{"version":"2.1.0","runs":[]}`
	if got := Sniff([]byte(input)); got != Unknown {
		t.Errorf("expected Unknown for non-event JSON, got %v", got)
	}
}

func TestSniff_LeadingWhitespace(t *testing.T) {
	input := `  {"Time":"2024-01-01T00:00:00Z","Action":"pass","Package":"x"}` + "\n"
	if got := Sniff([]byte(input)); got != GoTestJSON {
		t.Errorf("expected GoTestJSON with leading whitespace, got %v", got)
	}
}

func TestSniff_BuildOutputFirst(t *testing.T) {
	input := `{"ImportPath":"example.com/calc [example.com/calc.test]","Action":"build-output","Output":"# example.com/calc\n"}` + "\n"
	if got := Sniff([]byte(input)); got != GoTestJSON {
		t.Errorf("expected GoTestJSON for a build failure stream, got %v", got)
	}
}
