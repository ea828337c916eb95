package parser

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/maxviazov/wrestling-analytics/internal/model"
)

// Vs policies decide what a "X vs Y" line means when it carries no winner.
const (
	// VsHeuristic credits the side that mentions the home wrestler, else the second side.
	VsHeuristic = "heuristic"
	// VsStrict rejects vs-only lines instead of guessing.
	VsStrict = "strict"
)

// PromotionRule maps any of its keywords to a promotion name.
type PromotionRule struct {
	Name     string   `mapstructure:"name" yaml:"name" validate:"required"`
	Keywords []string `mapstructure:"keywords" yaml:"keywords" validate:"min=1,dive,required"`
}

// Classifier carries the keyword tables used to decompose a result string.
// Rules are checked in slice order and the first hit wins.
type Classifier struct {
	EventKeywords    []string        `mapstructure:"event_keywords" yaml:"event_keywords"`
	Promotions       []PromotionRule `mapstructure:"promotions" yaml:"promotions" validate:"dive"`
	PPVMarkers       []string        `mapstructure:"ppv_markers" yaml:"ppv_markers"`
	MarqueeEvents    []string        `mapstructure:"marquee_events" yaml:"marquee_events"`
	SpecialEvents    []string        `mapstructure:"special_events" yaml:"special_events"`
	HouseShowMarkers []string        `mapstructure:"house_show_markers" yaml:"house_show_markers"`
	VsPolicy         string          `mapstructure:"vs_policy" yaml:"vs_policy" validate:"omitempty,oneof=heuristic strict"`
}

// DefaultClassifier returns the keyword tables for the major promotions.
func DefaultClassifier() Classifier {
	return Classifier{
		EventKeywords: []string{"WWE", "AEW", "NJPW", "Impact", "TNA"},
		Promotions: []PromotionRule{
			{Name: model.PromotionWWE, Keywords: []string{"WWE"}},
			{Name: model.PromotionAEW, Keywords: []string{"AEW"}},
			{Name: model.PromotionNJPW, Keywords: []string{"NJPW"}},
			{Name: model.PromotionImpact, Keywords: []string{"Impact", "TNA"}},
		},
		PPVMarkers: []string{"Premium Live Event", "Pay-Per-View", "PPV"},
		MarqueeEvents: []string{
			"WrestleMania", "SummerSlam", "Royal Rumble", "Survivor Series",
			"Money In The Bank", "Hell In A Cell", "Elimination Chamber",
			"Forbidden Door", "All Out", "Revolution", "Double or Nothing",
		},
		SpecialEvents:    []string{"Forbidden Door", "WrestleMania", "G1 Climax", "Royal Rumble"},
		HouseShowMarkers: []string{"House Show", "Non-Televised", "Dark Match"},
		VsPolicy:         VsHeuristic,
	}
}

// WithDefaults fills every empty table from DefaultClassifier, so a config file can
// override one list without restating the others.
func (c Classifier) WithDefaults() Classifier {
	def := DefaultClassifier()
	if len(c.EventKeywords) == 0 {
		c.EventKeywords = def.EventKeywords
	}
	if len(c.Promotions) == 0 {
		c.Promotions = def.Promotions
	}
	if len(c.PPVMarkers) == 0 {
		c.PPVMarkers = def.PPVMarkers
	}
	if len(c.MarqueeEvents) == 0 {
		c.MarqueeEvents = def.MarqueeEvents
	}
	if len(c.SpecialEvents) == 0 {
		c.SpecialEvents = def.SpecialEvents
	}
	if len(c.HouseShowMarkers) == 0 {
		c.HouseShowMarkers = def.HouseShowMarkers
	}
	if c.VsPolicy == "" {
		c.VsPolicy = def.VsPolicy
	}
	return c
}

// eventPattern builds `(?:K1|K2|...)\s+([^@]+?)(?:\s*@|$)` from the event keywords.
func eventPattern(keywords []string) (*regexp.Regexp, error) {
	quoted := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(k))
	}
	if len(quoted) == 0 {
		return nil, nil
	}
	re, err := regexp.Compile(`(?:` + strings.Join(quoted, "|") + `)\s+([^@]+?)(?:\s*@|$)`)
	if err != nil {
		return nil, fmt.Errorf("compile event keywords: %w", err)
	}
	return re, nil
}

func (c Classifier) promotion(text string) string {
	for _, rule := range c.Promotions {
		for _, kw := range rule.Keywords {
			if kw != "" && strings.Contains(text, kw) {
				return rule.Name
			}
		}
	}
	return model.PromotionUnknown
}

func (c Classifier) isPPV(text, eventName string) bool {
	for _, m := range c.PPVMarkers {
		if m != "" && strings.Contains(text, m) {
			return true
		}
	}
	return containsFold(eventName, c.MarqueeEvents)
}

func (c Classifier) isSpecial(eventName string) bool {
	return containsFold(eventName, c.SpecialEvents)
}

func (c Classifier) isHouseShow(eventName, eventType string) bool {
	return containsFold(eventName, c.HouseShowMarkers) || containsFold(eventType, c.HouseShowMarkers)
}

func containsFold(s string, needles []string) bool {
	ls := strings.ToLower(s)
	for _, n := range needles {
		if n != "" && strings.Contains(ls, strings.ToLower(n)) {
			return true
		}
	}
	return false
}
