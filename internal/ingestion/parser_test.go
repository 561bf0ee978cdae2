package ingestion

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return p
}

func TestParseSeedFile_TableDriven(t *testing.T) {
	const header = "Symbol;Price\n"

	cases := []struct {
		name      string
		content   string
		wantErr   bool
		wantSeeds int
	}{
		{name: "ok two rows", content: header + "AAPL;150.50\nMSFT;285,75\n", wantSeeds: 2},
		{name: "comments skipped", content: header + "# ignored\nAAPL;150.50\n", wantSeeds: 1},
		{name: "header only", content: header, wantSeeds: 0},
		{name: "bad header order", content: "Price;Symbol\n", wantErr: true},
		{name: "bad header length", content: "Symbol;Price;Volume\n", wantErr: true},
		{name: "bad col count", content: header + "AAPL\n", wantErr: true},
		{name: "invalid price", content: header + "AAPL;abc\n", wantErr: true},
		{name: "empty symbol", content: header + ";10\n", wantErr: true},
		{name: "empty file", content: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			seeds, err := parseSeedFile(strings.NewReader(tc.content))
			if (err != nil) != tc.wantErr {
				t.Fatalf("err=%v, wantErr=%v", err, tc.wantErr)
			}
			if tc.wantErr {
				return
			}
			if len(seeds) != tc.wantSeeds {
				t.Fatalf("seeds=%d, want %d", len(seeds), tc.wantSeeds)
			}
		})
	}
}

func TestParseSeedFile_CommaDecimal(t *testing.T) {
	seeds, err := parseSeedFile(strings.NewReader("Symbol;Price\nmsft;285,75\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if seeds[0].Symbol != "MSFT" {
		t.Fatalf("symbol=%q, want MSFT", seeds[0].Symbol)
	}
	if seeds[0].Price.StringFixed(2) != "285.75" {
		t.Fatalf("price=%s, want 285.75", seeds[0].Price)
	}
}

func TestParseSeedList(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    []string
		wantErr bool
	}{
		{name: "default list", in: DefaultSeedList, want: []string{"AAPL", "GOOGL", "MSFT", "AMZN", "TSLA", "META", "NFLX", "NVDA"}},
		{name: "spaces and blanks", in: " aapl = 1.00 , ,msft=2", want: []string{"AAPL", "MSFT"}},
		{name: "empty", in: "", want: nil},
		{name: "missing equals", in: "AAPL150", wantErr: true},
		{name: "bad price", in: "AAPL=x", wantErr: true},
		{name: "empty symbol", in: "=10", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			seeds, err := ParseSeedList(tc.in)
			if tc.wantErr {
				if !errors.Is(err, ErrMalformedSeed) {
					t.Fatalf("err=%v, want ErrMalformedSeed", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSeedList: %v", err)
			}
			if len(seeds) != len(tc.want) {
				t.Fatalf("got %d seeds, want %d", len(seeds), len(tc.want))
			}
			for i, s := range seeds {
				if s.Symbol != tc.want[i] {
					t.Fatalf("seed %d = %s, want %s", i, s.Symbol, tc.want[i])
				}
			}
		})
	}
}
