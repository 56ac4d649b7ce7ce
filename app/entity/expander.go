package entity

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// AliasSet is the ordered, duplicate-free list of strings an article must
// mention to count as relevant to an entity.
type AliasSet []string

// Matches reports whether text contains any alias, ignoring case.
func (a AliasSet) Matches(text string) bool {
	lowered := strings.ToLower(text)
	for _, alias := range a {
		if alias == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(alias)) {
			return true
		}
	}
	return false
}

type Expander struct {
	aliases map[string][]string
}

func NewExpander() *Expander {
	aliases := make(map[string][]string, len(defaultAliases))
	for ticker, names := range defaultAliases {
		aliases[ticker] = names
	}
	return &Expander{aliases: aliases}
}

// Expand returns the lowercase and uppercase forms of identifier followed by
// any known aliases for it.
func (e *Expander) Expand(identifier string) AliasSet {
	set := make(AliasSet, 0, 4)
	seen := make(map[string]bool)

	add := func(s string) {
		if s == "" || seen[s] {
			return
		}
		seen[s] = true
		set = append(set, s)
	}

	add(strings.ToLower(identifier))
	add(strings.ToUpper(identifier))

	for _, alias := range e.aliases[strings.ToUpper(identifier)] {
		add(alias)
	}

	return set
}

func (e *Expander) Count() int {
	return len(e.aliases)
}

// LoadAliases merges ticker aliases from a YAML file of the form
// "TICKER: [alias, ...]". Entries in the file replace built-in ones.
func (e *Expander) LoadAliases(path string) error {
	if path == "" {
		return nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		slog.Debug("Alias file not found, using built-in aliases", "path", path)
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read alias file: %w", err)
	}

	var entries map[string][]string
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	for ticker, names := range entries {
		ticker = strings.ToUpper(strings.TrimSpace(ticker))
		if ticker == "" {
			return fmt.Errorf("alias file %s contains an empty ticker", path)
		}

		cleaned := make([]string, 0, len(names))
		for _, name := range names {
			if name = strings.ToLower(strings.TrimSpace(name)); name != "" {
				cleaned = append(cleaned, name)
			}
		}
		e.aliases[ticker] = cleaned
	}

	slog.Debug("Aliases loaded", "path", path, "entries", len(entries))

	return nil
}

var defaultAliases = map[string][]string{
	"TCS":        {"tata consultancy", "tcs ltd"},
	"SBIN":       {"state bank", "sbi"},
	"RELIANCE":   {"reliance industries", "ril"},
	"INFY":       {"infosys", "infosys ltd"},
	"HDFC":       {"hdfc bank", "hdfc ltd"},
	"ICICIBANK":  {"icici bank"},
	"M&M":        {"mahindra", "mahindra & mahindra"},
	"MARUTI":     {"maruti suzuki"},
	"BHARTIARTL": {"bharti airtel", "airtel"},
	"WIPRO":      {"wipro ltd"},
	"LT":         {"larsen toubro", "l&t"},
	"TATASTEEL":  {"tata steel"},
	"TATAMOTORS": {"tata motors"},
	"AXISBANK":   {"axis bank"},
	"SUNPHARMA":  {"sun pharma"},
	"DRREDDY":    {"dr reddy", "drl"},
	"HINDUNILVR": {"hindustan unilever", "hul"},
	"ASIANPAINT": {"asian paints"},
	"BAJFINANCE": {"bajaj finance"},
	"ADANIENT":   {"adani enterprises", "adani group"},
	"ITC":        {"itc ltd"},
	"ONGC":       {"oil natural gas"},
	"NTPC":       {"ntpc ltd"},
	"COALINDIA":  {"coal india"},
	"IOC":        {"indian oil"},
	"BPCL":       {"bharat petroleum"},
	"HINDPETRO":  {"hindustan petroleum"},
}
