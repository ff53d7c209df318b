package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/daylearn/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(0, 1).
			Width(38)

	termStyle = lipgloss.NewStyle().Bold(true)

	exampleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)

	statValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	correctStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	wrongStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	docStyle = lipgloss.NewStyle().Padding(1, 2)
)

// categoryColors mirrors the card header colours of the web version.
var categoryColors = map[models.Category]lipgloss.Color{
	models.CategoryEnglish:    lipgloss.Color("33"),
	models.CategorySpanish:    lipgloss.Color("160"),
	models.CategoryCoding:     lipgloss.Color("34"),
	models.CategoryFinance:    lipgloss.Color("178"),
	models.CategoryPhilosophy: lipgloss.Color("99"),
	models.CategoryPolitics:   lipgloss.Color("67"),
	models.CategoryQuote:      lipgloss.Color("244"),
}

func categoryStyle(c models.Category) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(categoryColors[c]).Bold(true)
}
