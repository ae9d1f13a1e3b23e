package orbitalshield

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func assessTokyo(t *testing.T) Assessment {
	t.Helper()
	s, err := ScenarioByKey("apophis-2029")
	if err != nil {
		t.Fatal(err)
	}
	a, err := NewAnalyzer(nil, nil).AssessScenario(s, 5)
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"text", "JSON", "Yaml", "csv"} {
		if _, err := ParseFormat(s); err != nil {
			t.Fatalf("%s: %s", s, err)
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatal("xml accepted")
	}
}

func TestExportJSON(t *testing.T) {
	a := assessTokyo(t)
	var buf bytes.Buffer
	if err := Export(&buf, JSON, a); err != nil {
		t.Fatal(err)
	}
	var back map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatal(err)
	}
	impact := back["impact"].(map[string]interface{})
	if impact["atmospheric"] != a.Impact.Atmospheric.String() {
		t.Fatalf("atmospheric effect exported as %v", impact["atmospheric"])
	}
	if back["torino"].(float64) != float64(a.Torino) {
		t.Fatalf("torino exported as %v", back["torino"])
	}
}

func TestExportYAML(t *testing.T) {
	a := assessTokyo(t)
	var buf bytes.Buffer
	if err := Export(&buf, YAML, a.Selection); err != nil {
		t.Fatal(err)
	}
	var back struct {
		Method string  `yaml:"method"`
		Score  float64 `yaml:"score"`
		Scores []struct {
			Method string `yaml:"method"`
		} `yaml:"scores"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatal(err)
	}
	if back.Method != string(a.Selection.Method) || len(back.Scores) != len(Methods) {
		t.Fatalf("yaml round trip %+v", back)
	}
}

func TestExportCSV(t *testing.T) {
	a := assessTokyo(t)
	var buf bytes.Buffer
	if err := Export(&buf, CSV, a); err != nil {
		t.Fatal(err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != len(a.Casualties.Cities)+1 || rows[0][0] != "city" {
		t.Fatalf("%d rows for %d cities", len(rows), len(a.Casualties.Cities))
	}
	if rows[1][0] != "Tokyo-Yokohama" {
		t.Fatalf("first city %s", rows[1][0])
	}

	buf.Reset()
	if err := Export(&buf, CSV, a.Selection); err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(buf.String(), "\n"); n != len(Methods)+1 {
		t.Fatalf("%d score lines", n)
	}
	if err := Export(&buf, CSV, a.Impact); err == nil {
		t.Fatal("impact effects have no CSV form")
	}
}

func TestExportText(t *testing.T) {
	a := assessTokyo(t)
	var buf bytes.Buffer
	if err := Export(&buf, Text, a); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Torino:       3", "Largest city: Tokyo-Yokohama", "Mission:"} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("text report lacks %q:\n%s", want, buf.String())
		}
	}
	buf.Reset()
	if err := Export(&buf, Text, UrgencyFor(1)); err != nil || buf.String() != "URGENT\n" {
		t.Fatalf("text of a plain value: %q (%v)", buf.String(), err)
	}
	if err := Export(&buf, Format("pdf"), a); err == nil {
		t.Fatal("unknown format accepted")
	}
}
