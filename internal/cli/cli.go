// Package cli tinyjson 命令行
package cli

import (
	"errors"
	"fmt"

	"github.com/cxykevin/tinyjson/config/structs"
	"github.com/cxykevin/tinyjson/internal/source"
	"github.com/cxykevin/tinyjson/library/json"
	"github.com/cxykevin/tinyjson/log"
	"github.com/cxykevin/tinyjson/product"
	"github.com/cxykevin/tinyjson/storage"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// ErrFailed 命令已输出失败信息，只需要以非零状态退出
var ErrFailed = errors.New("one or more inputs failed")

// CLI 命令共享的状态
type CLI struct {
	cfg     *structs.Config
	color   bool
	verbose bool
	db      *gorm.DB
	store   *storage.Store
	logger  *log.LogsObj
}

// New 创建 CLI
func New(cfg *structs.Config) *CLI {
	return &CLI{
		cfg:    cfg,
		color:  cfg.Output.Color,
		logger: log.New("cli"),
	}
}

// RootCommand 创建根命令并注册所有子命令
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "tinyjson",
		Short:         "tinyjson validates, formats and stores JSON documents",
		Version:       product.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetDebug(c.verbose)
			c.logger.Debug("run %s %v", cmd.CommandPath(), args)
		},
	}
	root.SetVersionTemplate(product.UserAgent + "\n")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&c.color, "color", c.cfg.Output.Color, "colorize output")

	root.AddCommand(c.checkCommand())
	root.AddCommand(c.fmtCommand())
	root.AddCommand(c.printCommand())
	root.AddCommand(c.evalCommand())
	root.AddCommand(c.storeCommand())
	root.AddCommand(c.benchCommand())
	root.AddCommand(c.logCommand())
	return root
}

// Close 关闭打开的文档库
func (c *CLI) Close() error {
	if c.db == nil {
		return nil
	}
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	c.db = nil
	c.store = nil
	return sqlDB.Close()
}

func (c *CLI) sourceOptions() source.Options {
	return source.Options{MaxSize: c.cfg.Codec.MaxInputSize, Transcode: true}
}

// readInput 读取输入文件，返回的 Data 需要 Close
func (c *CLI) readInput(path string) (*source.Data, error) {
	d, err := source.ReadFile(path, c.sourceOptions())
	if err != nil {
		return nil, err
	}
	c.logger.Debug("read %s: %d bytes, %s, mapped=%v", path, len(d.Bytes), d.Encoding, d.Mapped)
	return d, nil
}

// decodeFile 读取并解析输入文件
func (c *CLI) decodeFile(path string) (json.Value, error) {
	d, err := c.readInput(path)
	if err != nil {
		return json.Value{}, err
	}
	defer d.Close()
	v, err := json.NewDecoder(c.cfg.Codec.Options()).Decode(d.Bytes)
	if err != nil {
		return json.Value{}, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

// openStore 打开文档库，同一个 CLI 只打开一次
func (c *CLI) openStore() (*storage.Store, error) {
	if c.store != nil {
		return c.store, nil
	}
	db, err := storage.InitStorage(c.cfg.Storage.DataPath, c.cfg.Storage.DBFile)
	if err != nil {
		return nil, err
	}
	c.db = db
	c.store = storage.NewStore(db, c.cfg.Codec.MaxInputSize, c.cfg.Codec.Options())
	return c.store, nil
}
