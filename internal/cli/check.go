package cli

import (
	"errors"
	"fmt"

	"github.com/cxykevin/tinyjson/library/json"
	"github.com/spf13/cobra"
)

// describe 输出错误描述，语法错误给出错误码和偏移
func describe(err error) string {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return fmt.Sprintf("%s at offset %d", syntaxErr.Code.String(), syntaxErr.Offset)
	}
	return err.Error()
}

// checkFile 解析单个文件并丢弃结果
func (c *CLI) checkFile(dec *json.Decoder, path string) error {
	d, err := c.readInput(path)
	if err != nil {
		return err
	}
	defer d.Close()
	v, err := dec.Decode(d.Bytes)
	if err != nil {
		return err
	}
	v.Free()
	return nil
}

func (c *CLI) checkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Validate JSON files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dec := json.NewDecoder(c.cfg.Codec.Options())
			failed := 0
			for _, path := range args {
				err := c.checkFile(dec, path)
				if err != nil {
					failed++
					c.logger.Info("check %s failed: %v", path, err)
				}
				c.printStatus(cmd.OutOrStdout(), path, err)
			}
			if failed > 0 {
				return ErrFailed
			}
			return nil
		},
	}
}
