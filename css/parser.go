package css

import (
	"bytes"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	tdcss "github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser parses CSS stylesheets into structured rules.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Parse parses CSS text into a Stylesheet.
// The optional source parameter identifies what's being parsed (for debug logging).
func (p *Parser) Parse(data []byte, source ...string) *Stylesheet {
	sheet := &Stylesheet{
		Items:    make([]Item, 0),
		Warnings: make([]string, 0),
	}

	if len(source) > 0 && source[0] != "" {
		p.log.Debug("Parsing CSS", zap.String("source", source[0]), zap.Int("bytes", len(data)))
	}

	input := parse.NewInput(bytes.NewReader(data))
	parser := tdcss.NewParser(input, false)

	// containers tracks where new items go as at-rule blocks open and close
	containers := []*[]Item{&sheet.Items}
	var (
		pendingSelectors []string
		currentRule      *Rule
		atRules          []*AtRule
	)
	top := func() *[]Item { return containers[len(containers)-1] }

	for {
		gt, _, data := parser.Next()

		switch gt {
		case tdcss.ErrorGrammar:
			if err := parser.Err(); err != nil && err.Error() != "EOF" {
				p.log.Debug("CSS parse error", zap.Error(err))
				sheet.Warnings = append(sheet.Warnings, err.Error())
			}
			return sheet

		case tdcss.CommentGrammar:
			comment := string(data)
			items := top()
			*items = append(*items, Item{Comment: &comment})

		case tdcss.AtRuleGrammar:
			ar := &AtRule{Name: string(data), Params: joinTokens(parser.Values())}
			items := top()
			*items = append(*items, Item{AtRule: ar})
			p.log.Debug("Parsed at-rule", zap.String("rule", ar.Name), zap.String("params", ar.Params))

		case tdcss.BeginAtRuleGrammar:
			ar := &AtRule{Name: string(data), Params: joinTokens(parser.Values()), HasBlock: true}
			items := top()
			*items = append(*items, Item{AtRule: ar})
			containers = append(containers, &ar.Items)
			atRules = append(atRules, ar)

		case tdcss.EndAtRuleGrammar:
			if len(containers) > 1 {
				containers = containers[:len(containers)-1]
				atRules = atRules[:len(atRules)-1]
			}

		case tdcss.QualifiedRuleGrammar:
			sel := strings.TrimSuffix(joinTokens(parser.Values()), ",")
			pendingSelectors = append(pendingSelectors, strings.TrimSpace(sel))

		case tdcss.BeginRulesetGrammar:
			pendingSelectors = append(pendingSelectors, joinTokens(parser.Values()))
			currentRule = &Rule{Selector: strings.Join(pendingSelectors, ", ")}
			pendingSelectors = nil
			items := top()
			*items = append(*items, Item{Rule: currentRule})

		case tdcss.EndRulesetGrammar:
			currentRule = nil

		case tdcss.DeclarationGrammar, tdcss.CustomPropertyGrammar:
			d := Declaration{
				Property: string(data),
				Value:    strings.TrimSpace(joinTokens(parser.Values())),
				Custom:   gt == tdcss.CustomPropertyGrammar,
			}
			switch {
			case currentRule != nil:
				currentRule.Declarations = append(currentRule.Declarations, d)
			case len(atRules) > 0:
				ar := atRules[len(atRules)-1]
				ar.Declarations = append(ar.Declarations, d)
			default:
				sheet.Warnings = append(sheet.Warnings, "declaration outside of any rule: "+d.Property)
			}
		}
	}
}

// ParseString is a convenience wrapper around Parse.
func (p *Parser) ParseString(data string, source ...string) *Stylesheet {
	return p.Parse([]byte(data), source...)
}

func joinTokens(tokens []tdcss.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.Write(t.Data)
	}
	return strings.TrimSpace(b.String())
}
