package trackfolio

import "testing"

func TestJSONObjectWriter(t *testing.T) {
	var w jsonObjectWriter
	w.Append("a", 1)
	w.Optional("skipped", "")
	w.Optional("kept", "x")
	w.Embed([]byte(`{"b":2,"c":3}`))

	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"a":1,"kept":"x","b":2,"c":3}`
	if string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestJSONObjectWriterEmpty(t *testing.T) {
	var w jsonObjectWriter
	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "{}" {
		t.Errorf("got %s, want {}", got)
	}
}

func TestJSONObjectWriterEmbedFrom(t *testing.T) {
	var w jsonObjectWriter
	w.EmbedFrom(struct {
		A int `json:"a"`
	}{A: 7})
	w.Append("z", true)

	got, err := w.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `{"a":7,"z":true}` {
		t.Errorf("got %s", got)
	}
}
