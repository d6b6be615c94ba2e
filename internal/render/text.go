package render

import (
	"fmt"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
)

var mdConverter = converter.NewConverter(
	converter.WithPlugins(
		base.NewBasePlugin(),
		commonmark.NewCommonmarkPlugin(),
		table.NewTablePlugin(),
	),
)

// Text converts a view to markdown for text sinks such as the terminal.
func Text(v View) (string, error) {
	if v.HTML == "" {
		return "", nil
	}
	md, err := mdConverter.ConvertString(string(v.HTML))
	if err != nil {
		return "", fmt.Errorf("converting %s view: %w", v.Kind, err)
	}
	return strings.TrimSpace(md), nil
}
