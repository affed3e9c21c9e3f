package category

import (
	"strings"

	"github.com/pkg/errors"
	"max.ks1230/expense-ledger/internal/model/customerr"
)

const (
	DefaultColor = "#cccccc"
	DefaultIcon  = "🏷️"
)

type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	Icon      string `json:"icon"`
	IsDefault bool   `json:"isDefault"`
}

type Draft struct {
	Name  string
	Color string
	Icon  string
}

var seed = []Draft{
	{Name: "Food", Color: "#FF6384", Icon: "🍔"},
	{Name: "Transport", Color: "#36A2EB", Icon: "🚗"},
	{Name: "Utilities", Color: "#FFCE56", Icon: "💡"},
	{Name: "Entertainment", Color: "#4BC0C0", Icon: "🎬"},
	{Name: "Other", Color: "#9966FF", Icon: "❓"},
}

// Defaults builds the built-in categories stored on first start.
func Defaults(newID func() string) []Category {
	res := make([]Category, 0, len(seed))
	for _, d := range seed {
		res = append(res, Category{
			ID:        newID(),
			Name:      d.Name,
			Color:     d.Color,
			Icon:      d.Icon,
			IsDefault: true,
		})
	}
	return res
}

// New creates a user category. Missing color and icon fall back to defaults.
func New(id string, draft Draft) (Category, error) {
	name, err := normalizeName(draft.Name)
	if err != nil {
		return Category{}, err
	}
	cat := Category{
		ID:    id,
		Name:  name,
		Color: orDefault(draft.Color, DefaultColor),
		Icon:  orDefault(draft.Icon, DefaultIcon),
	}
	return cat, nil
}

// Apply renames the category; blank color or icon keep the current values.
// IsDefault is never touched.
func (c *Category) Apply(draft Draft) error {
	name, err := normalizeName(draft.Name)
	if err != nil {
		return err
	}
	c.Name = name
	c.Color = orDefault(draft.Color, c.Color)
	c.Icon = orDefault(draft.Icon, c.Icon)
	return nil
}

// HasName compares names case-insensitively, ignoring surrounding spaces.
func (c Category) HasName(name string) bool {
	return strings.EqualFold(strings.TrimSpace(c.Name), strings.TrimSpace(name))
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.Wrap(customerr.ErrInvalidName, "category name")
	}
	return name, nil
}

func orDefault(val, def string) string {
	if v := strings.TrimSpace(val); v != "" {
		return v
	}
	return def
}
