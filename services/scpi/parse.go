package scpi

import (
	"math"
	"strconv"
	"strings"

	"github.com/google/shlex"
)

// pattern is a compiled command header such as "SYSTem:ERRor[:NEXT]?".
// Upper-case letters are the short form; the whole mnemonic is the long
// form. Bracketed nodes are optional.
type pattern struct {
	text  string
	alts  [][]string
	query bool
}

func compile(text string) pattern {
	p := pattern{text: text}
	s := text
	if strings.HasSuffix(s, "?") {
		p.query = true
		s = s[:len(s)-1]
	}
	alts := [][]string{nil}
	for len(s) > 0 {
		var seg string
		opt := s[0] == '['
		if opt {
			end := strings.IndexByte(s, ']')
			seg, s = s[1:end], s[end+1:]
		} else {
			end := strings.IndexByte(s, '[')
			if end < 0 {
				end = len(s)
			}
			seg, s = s[:end], s[end:]
		}
		var nodes []string
		for _, n := range strings.Split(seg, ":") {
			if n != "" {
				nodes = append(nodes, n)
			}
		}
		next := make([][]string, 0, 2*len(alts))
		for _, a := range alts {
			next = append(next, append(append([]string(nil), a...), nodes...))
			if opt {
				next = append(next, a)
			}
		}
		alts = next
	}
	p.alts = alts
	return p
}

func (p pattern) match(nodes []string, query bool) bool {
	if query != p.query {
		return false
	}
	for _, alt := range p.alts {
		if len(alt) != len(nodes) {
			continue
		}
		ok := true
		for i := range alt {
			if !matchNode(alt[i], nodes[i]) {
				ok = false
				break
			}
		}
		if ok {
			return true
		}
	}
	return false
}

func matchNode(pat, in string) bool {
	if strings.EqualFold(pat, in) {
		return true
	}
	short := pat
	for i := 0; i < len(pat); i++ {
		if c := pat[i]; c >= 'a' && c <= 'z' {
			short = pat[:i]
			break
		}
	}
	return short != pat && strings.EqualFold(short, in)
}

// splitOutside splits s at sep, ignoring separators inside single or double
// quotes.
func splitOutside(s string, sep byte) []string {
	var out []string
	var quote byte
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == sep:
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return append(out, s[start:])
}

// command is one parsed program message unit.
type command struct {
	nodes  []string
	query  bool
	params []string // raw, still quoted
}

// parseCommand splits "ROUT:CONN 'AB'" into header nodes and raw params.
// prefix holds the nodes a relative header inherits after a ';'.
func parseCommand(s string, prefix []string) (command, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return command{}, false
	}
	header, rest := s, ""
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		header, rest = s[:i], strings.TrimSpace(s[i+1:])
	}
	var c command
	if strings.HasSuffix(header, "?") {
		c.query = true
		header = header[:len(header)-1]
	}
	switch {
	case strings.HasPrefix(header, "*"):
	case strings.HasPrefix(header, ":"):
		header = header[1:]
	default:
		c.nodes = append(c.nodes, prefix...)
	}
	for _, n := range strings.Split(header, ":") {
		c.nodes = append(c.nodes, n)
	}
	if rest != "" {
		for _, p := range splitOutside(rest, ',') {
			c.params = append(c.params, strings.TrimSpace(p))
		}
	}
	return c, true
}

// unquote returns the single word in a raw parameter, with any quoting
// removed. "AB", 'AB' and AB all give AB.
func unquote(raw string) (string, error) {
	words, err := shlex.Split(raw)
	if err != nil {
		return "", Error{Code: ErrInvalidString, Info: err.Error()}
	}
	switch len(words) {
	case 0:
		return "", nil
	case 1:
		return words[0], nil
	default:
		return "", Error{Code: ErrInvalidCharData, Info: "Wrong Length"}
	}
}

// parseInt64 accepts decimal integers and, failing that, real numbers,
// which are truncated toward negative infinity.
func parseInt64(raw string) (int64, error) {
	if v, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, Error{Code: ErrDataType}
	}
	f = math.Floor(f)
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, Error{Code: ErrDataOutOfRange}
	}
	return int64(f), nil
}
