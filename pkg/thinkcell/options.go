package thinkcell

// ObjectOption configures how a chart, table or pie object is built.
type ObjectOption func(*objectConfig)

type objectConfig struct {
	fill          []string
	firstRowBlank bool
}

func newObjectConfig() *objectConfig {
	return &objectConfig{firstRowBlank: true}
}

// WithFill sets per-row fill colors (hex or rgb strings). The list must have
// exactly one entry per data row; entries may be "" for no fill on that row.
func WithFill(colors []string) ObjectOption {
	return func(c *objectConfig) {
		c.fill = colors
	}
}

// WithFirstRowBlank controls whether a blank row is inserted right below a
// chart's category header. think-cell uses that row to anchor the 100% scale
// in stacked charts, so it defaults to on. Pie charts ignore this setting.
func WithFirstRowBlank(blank bool) ObjectOption {
	return func(c *objectConfig) {
		c.firstRowBlank = blank
	}
}

// ScatterOption configures the column mapping for AddScatterFromFrame.
type ScatterOption func(*scatterConfig)

type scatterConfig struct {
	label string
	size  string
	group string
	fill  []string
}

// WithLabelColumn names the frame column holding marker labels.
func WithLabelColumn(col string) ScatterOption {
	return func(c *scatterConfig) { c.label = col }
}

// WithSizeColumn names the frame column holding relative marker sizes.
func WithSizeColumn(col string) ScatterOption {
	return func(c *scatterConfig) { c.size = col }
}

// WithGroupColumn names the frame column holding the marker grouping.
func WithGroupColumn(col string) ScatterOption {
	return func(c *scatterConfig) { c.group = col }
}

// WithScatterFill sets per-row fill colors for the scatter data.
func WithScatterFill(colors []string) ScatterOption {
	return func(c *scatterConfig) { c.fill = colors }
}

// TemplateOption configures a Template at construction time.
type TemplateOption func(*Template)

// WithWarningHandler replaces the sink for non-fatal diagnostics (such as a
// non-string object name being coerced). The default handler logs through
// zerolog's global logger.
func WithWarningHandler(f WarningFunc) TemplateOption {
	return func(t *Template) {
		if f != nil {
			t.warnf = f
		}
	}
}
