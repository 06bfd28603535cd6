package cli

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/cxykevin/tinyjson/library/json"
	"github.com/shirou/gopsutil/v4/process"
	"github.com/spf13/cobra"
)

// benchResult 一次基准测试的结果
type benchResult struct {
	Iterations int
	InputSize  int
	OutputSize int
	Decode     time.Duration
	Encode     time.Duration
}

// throughput 返回 MB/s
func throughput(size int, iterations int, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(size) * float64(iterations) / d.Seconds() / 1e6
}

func (c *CLI) runBench(cmd *cobra.Command, data []byte, iterations int) (benchResult, error) {
	res := benchResult{Iterations: iterations, InputSize: len(data)}
	dec := json.NewDecoder(c.cfg.Codec.Options())
	enc := json.NewEncoder(c.cfg.Codec.Options())
	for i := 0; i < iterations; i++ {
		if err := cmd.Context().Err(); err != nil {
			return res, err
		}
		start := time.Now()
		v, err := dec.Decode(data)
		if err != nil {
			return res, err
		}
		mid := time.Now()
		out, err := enc.Encode(&v)
		res.Encode += time.Since(mid)
		res.Decode += mid.Sub(start)
		v.Free()
		if err != nil {
			return res, err
		}
		res.OutputSize = len(out)
	}
	return res, nil
}

func (c *CLI) printProcessStats(cmd *cobra.Command) {
	w := cmd.OutOrStdout()
	p, err := process.NewProcessWithContext(cmd.Context(), int32(os.Getpid()))
	if err != nil {
		c.logger.Warn("failed to read process stats: %v", err)
		return
	}
	if mem, err := p.MemoryInfoWithContext(cmd.Context()); err == nil {
		c.printKeyValue(w, "rss", strconv.FormatUint(mem.RSS, 10)+" bytes")
	} else {
		c.logger.Warn("failed to read memory info: %v", err)
	}
	if times, err := p.TimesWithContext(cmd.Context()); err == nil {
		c.printKeyValue(w, "cpu", fmt.Sprintf("user %.3fs system %.3fs", times.User, times.System))
	} else {
		c.logger.Warn("failed to read cpu times: %v", err)
	}
}

func (c *CLI) benchCommand() *cobra.Command {
	var iterations int

	cmd := &cobra.Command{
		Use:   "bench FILE",
		Short: "Measure decode and encode throughput on a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if iterations <= 0 {
				return fmt.Errorf("iterations must be positive, got %d", iterations)
			}
			d, err := c.readInput(args[0])
			if err != nil {
				return err
			}
			defer d.Close()

			res, err := c.runBench(cmd, d.Bytes, iterations)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			c.logger.Info("bench %s: %d iterations decode=%s encode=%s", args[0], iterations, res.Decode, res.Encode)

			w := cmd.OutOrStdout()
			c.printKeyValue(w, "iterations", strconv.Itoa(res.Iterations))
			c.printKeyValue(w, "input", strconv.Itoa(res.InputSize)+" bytes")
			c.printKeyValue(w, "output", strconv.Itoa(res.OutputSize)+" bytes")
			c.printKeyValue(w, "decode", fmt.Sprintf("%s (%.2f MB/s)", res.Decode, throughput(res.InputSize, res.Iterations, res.Decode)))
			c.printKeyValue(w, "encode", fmt.Sprintf("%s (%.2f MB/s)", res.Encode, throughput(res.OutputSize, res.Iterations, res.Encode)))
			c.printProcessStats(cmd)
			return nil
		},
	}

	cmd.Flags().IntVarP(&iterations, "iterations", "n", 100, "number of decode/encode rounds")
	return cmd
}
