package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ja-he/gridconf/internal/model"
)

// ShowCommand is the command `show`, which prints the screen grid.
//
// The server screen is marked with a '*', empty cells are shown as '.'.
type ShowCommand struct {
	Settings bool `short:"s" long:"settings" description:"also print the settings"`
}

// Execute executes the show command.
func (command *ShowCommand) Execute(args []string) error {
	c, err := newProvider().Load()
	if err != nil {
		return err
	}

	renderGrid(os.Stdout, c.Topology())
	if command.Settings {
		fmt.Println()
		renderSettings(os.Stdout, c.Settings())
	}
	return nil
}

func renderGrid(w io.Writer, t *model.Topology) {
	width := 1
	for _, s := range t.Screens() {
		if len(s.Name)+1 > width {
			width = len(s.Name) + 1
		}
	}

	for row := 0; row < t.Rows(); row++ {
		cells := make([]string, t.Columns())
		for column := range cells {
			label := "."
			if s, ok := t.ScreenAt(column, row); ok {
				label = s.Name
				if s.IsServer {
					label = "*" + label
				}
			}
			cells[column] = fmt.Sprintf("%-*s", width, label)
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, " "), " "))
	}
}

func renderSettings(w io.Writer, s *model.Settings) {
	corners := make([]string, 0, len(model.Corners))
	for _, c := range s.EnabledCorners() {
		corners = append(corners, c.String())
	}
	clipboard := "off"
	if s.EffectiveClipboardSharing() {
		clipboard = fmt.Sprintf("%d KB", s.ClipboardSizeLimitKB())
	}

	fmt.Fprintf(w, "relative mouse moves:      %t\n", s.RelativeMouseMoves)
	fmt.Fprintf(w, "win32 keep foreground:     %t\n", s.KeepForegroundOnWin32)
	fmt.Fprintf(w, "ignore auto config client: %t\n", s.IgnoreAutoConfigClient)
	fmt.Fprintf(w, "disable lock to screen:    %t\n", s.DisableLockToScreen)
	fmt.Fprintf(w, "clipboard sharing:         %s\n", clipboard)
	fmt.Fprintf(w, "heartbeat (ms):            %s\n", s.Heartbeat)
	fmt.Fprintf(w, "switch delay (ms):         %s\n", s.SwitchDelay)
	fmt.Fprintf(w, "switch double tap (ms):    %s\n", s.SwitchDoubleTap)
	fmt.Fprintf(w, "switch corners:            [%s] size %d\n", strings.Join(corners, ", "), s.CornerSize)
	if s.ExternalConfig.Enabled {
		fmt.Fprintf(w, "external config:           %s\n", s.ExternalConfig.Path)
	}
}

// LinksCommand is the command `links`, which prints, for every screen, its
// neighbors.
type LinksCommand struct{}

// Execute executes the links command.
func (command *LinksCommand) Execute(args []string) error {
	c, err := newProvider().Load()
	if err != nil {
		return err
	}
	renderLinks(os.Stdout, c.Snapshot().Links())
	return nil
}

func renderLinks(w io.Writer, links []model.Link) {
	for _, l := range links {
		fmt.Fprintf(w, "%s %s = %s\n", l.From, l.Direction, l.To)
	}
}
