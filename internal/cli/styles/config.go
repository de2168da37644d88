package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/glide/internal/infrastructure/config"
)

// ConfigRenderer renders the resolved configuration.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

type configRow struct {
	key   string
	value string
}

// RenderConfig renders the config file path followed by every key and its
// effective value.
func (r *ConfigRenderer) RenderConfig(path string, cfg *config.Config) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n  %s Config %s\n\n",
		iconStyle.Render(IconConfig),
		r.theme.Subtle.Render(path),
	))

	sections := []struct {
		title string
		rows  []configRow
	}{
		{"fullscreen", []configRow{
			{"autohide_delay", cfg.Fullscreen.AutohideDelay.String()},
			{"inhibit_sleep", r.renderBool(cfg.Fullscreen.InhibitSleep)},
			{"inhibit_reason", fmt.Sprintf("%q", cfg.Fullscreen.InhibitReason)},
			{"restore_geometry", r.renderBool(cfg.Fullscreen.RestoreGeometry)},
		}},
		{"window", []configRow{
			{"default_width", fmt.Sprintf("%d", cfg.Window.DefaultWidth)},
			{"default_height", fmt.Sprintf("%d", cfg.Window.DefaultHeight)},
		}},
		{"logging", []configRow{
			{"level", cfg.Logging.Level},
			{"format", cfg.Logging.Format},
		}},
	}

	for _, section := range sections {
		sb.WriteString(fmt.Sprintf("  %s\n", r.theme.Title.Render("["+section.title+"]")))
		for _, row := range section.rows {
			sb.WriteString(fmt.Sprintf("    %s %-18s %s\n",
				iconStyle.Render(IconCursor),
				row.key,
				r.theme.Normal.Render(row.value),
			))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func (r *ConfigRenderer) renderBool(v bool) string {
	if v {
		return r.theme.Badge.Render("on")
	}
	return r.theme.BadgeMuted.Render("off")
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)
	return fmt.Sprintf("\n  %s %s\n", iconStyle.Render(IconX), r.theme.ErrorStyle.Render(err.Error()))
}
