package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/cxykevin/tinyjson/log"
	"github.com/spf13/cobra"
)

// followInterval 跟踪模式下检查日志文件的间隔
const followInterval = 500 * time.Millisecond

var levelStyles = map[string]lipgloss.Style{
	"DEBUG": lipgloss.NewStyle().Foreground(colorCyan),
	"INFO":  lipgloss.NewStyle().Foreground(colorGreen),
	"WARN":  lipgloss.NewStyle().Foreground(colorYellow),
	"ERROR": lipgloss.NewStyle().Foreground(colorRed),
}

var (
	styleTimestamp = lipgloss.NewStyle().Foreground(colorBlue)
	styleModule    = lipgloss.NewStyle().Foreground(colorGray)
)

// showLog 从第 skip 行之后输出日志，返回文件总行数
func (c *CLI) showLog(w io.Writer, path string, skip int, minLevel string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return skip, err
	}
	defer f.Close()
	return log.ReadEntries(f, skip, func(lineNum int, e log.Entry, ok bool, raw string) {
		if !ok {
			fmt.Fprintf(w, "%s %s\n", c.render(styleLiteral, fmt.Sprintf("[LINE %d]", lineNum)), raw)
			return
		}
		if !log.LevelAtLeast(e.Level, minLevel) {
			return
		}
		level := "[" + e.Level + "]"
		if style, exists := levelStyles[e.Level]; exists {
			level = c.render(style, level)
		}
		fmt.Fprintf(w, "%s %s %s %s\n",
			c.render(styleTimestamp, e.Timestamp),
			level,
			c.render(styleModule, "["+e.Module+"]"),
			e.Message)
	})
}

func (c *CLI) logCommand() *cobra.Command {
	var minLevel string
	var follow bool

	cmd := &cobra.Command{
		Use:   "log [FILE]",
		Short: "Show the tinyjson log",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := log.Path()
			if len(args) > 0 {
				path = args[0]
			}
			w := cmd.OutOrStdout()
			lines, err := c.showLog(w, path, 0, minLevel)
			if err != nil || !follow {
				return err
			}

			info, err := os.Stat(path)
			if err != nil {
				return err
			}
			lastSize := info.Size()
			ticker := time.NewTicker(followInterval)
			defer ticker.Stop()
			for {
				select {
				case <-cmd.Context().Done():
					return cmd.Context().Err()
				case <-ticker.C:
				}
				info, err := os.Stat(path)
				if err != nil {
					return err
				}
				// 文件被截断时从头输出
				if info.Size() < lastSize {
					lines = 0
				}
				if info.Size() != lastSize {
					if lines, err = c.showLog(w, path, lines, minLevel); err != nil {
						return err
					}
				}
				lastSize = info.Size()
			}
		},
	}

	cmd.Flags().StringVar(&minLevel, "level", "DEBUG", "minimum level to show (DEBUG, INFO, WARN, ERROR)")
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "keep watching the file for new entries")
	return cmd
}
