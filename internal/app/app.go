package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/abdulachik/hotboard/internal/config"
	"github.com/abdulachik/hotboard/internal/db"
	"github.com/abdulachik/hotboard/internal/monitor"
	"github.com/abdulachik/hotboard/internal/presenter"
)

// App is the main application container holding all dependencies.
type App struct {
	Config   *config.Config
	Monitor  *monitor.BaiduMonitor
	Store    *db.Store
	Recorder *monitor.Recorder
	Printer  *presenter.Printer

	quiet bool
}

// Options controls which optional parts of the application are wired.
type Options struct {
	// Archive opens the snapshot database and records every fetch.
	Archive bool

	Out     io.Writer
	Quiet   bool
	NoColor bool
}

// New creates a new application instance with all dependencies wired up.
func New(ctx context.Context, cfg *config.Config, opts Options) (*App, error) {
	a := &App{
		Config: cfg,
		Monitor: monitor.NewBaiduMonitor(monitor.BaiduConfig{
			URL:     cfg.BoardURL,
			Timeout: cfg.FetchTimeout,
		}),
		Printer: presenter.NewPrinter(presenter.PrinterConfig{
			Out:     opts.Out,
			NoColor: opts.NoColor,
			Quiet:   opts.Quiet,
		}),
		quiet: opts.Quiet,
	}

	if opts.Archive {
		// Create database connection
		store, err := db.NewStore(ctx, cfg.DatabasePath)
		if err != nil {
			return nil, err
		}

		// Run migrations
		if err := store.Migrate(ctx); err != nil {
			store.Close()
			return nil, err
		}

		a.Store = store
		a.Recorder = monitor.NewRecorder(monitor.RecorderConfig{Store: store})
	}

	return a, nil
}

// FetchOptions controls one run of the fetch pipeline.
type FetchOptions struct {
	// Output, when set, receives the untruncated snapshot.
	Output string
	Strict bool
	Format presenter.Format
}

// FetchResult is the outcome of a successful fetch.
type FetchResult struct {
	Raw        []monitor.RawEntry
	Entries    []monitor.TrendingEntry
	CapturedAt time.Time
	SnapshotID string
}

// Fetch runs fetch, extract, project and present once. Printing, persisting
// and archiving are independent: a failed save does not suppress the printed
// entries, and a failed print does not skip the save. Failures are reported
// through the printer and returned.
func (a *App) Fetch(ctx context.Context, opts FetchOptions) (*FetchResult, error) {
	a.Printer.Banner("开始爬取百度实时热搜榜", "Baiduリアルタイムホットリサーチのスクレイピングを開始します")

	result, err := a.fetch(ctx, opts)
	if err != nil {
		a.fail(err)
		return nil, err
	}

	var errs []error
	if !a.quiet {
		a.Printer.Banner("百度热搜榜 Top 10", "Baiduホットリサーチ Top 10")
		if err := presenter.Write(a.Printer.Out(), opts.Format, result.Entries); err != nil {
			errs = append(errs, err)
		}
	}
	errs = append(errs, a.save(ctx, opts, result)...)

	if err := errors.Join(errs...); err != nil {
		for _, e := range errs {
			a.Printer.Error("%s", Describe(e))
		}
		a.Printer.Footer("程序出错: "+err.Error(), "プログラムエラー: "+err.Error())
		return result, err
	}

	a.Printer.Footer("数据爬取和展示完成", "データのスクレイピングと表示が完了しました")
	return result, nil
}

func (a *App) fail(err error) {
	a.Printer.Error("%s", Describe(err))
	a.Printer.Footer("程序出错: "+err.Error(), "プログラムエラー: "+err.Error())
}

func (a *App) fetch(ctx context.Context, opts FetchOptions) (*FetchResult, error) {
	raw, err := a.Monitor.FetchTrends(ctx)
	if err != nil {
		return nil, err
	}
	a.Printer.OK("成功获取并解析了热搜数据 / ホットリサーチデータの取得と解析に成功しました (%d)", len(raw))

	result := &FetchResult{
		Raw:        raw,
		CapturedAt: time.Now(),
	}

	if opts.Strict {
		result.Entries, err = a.Monitor.TopStrict(raw)
		if err != nil {
			return nil, err
		}
	} else {
		result.Entries = a.Monitor.Top(raw)
	}

	return result, nil
}

// save writes the snapshot file and the archive record. Both are attempted
// even if the other fails.
func (a *App) save(ctx context.Context, opts FetchOptions, result *FetchResult) []error {
	var errs []error

	if opts.Output != "" {
		if err := presenter.Persist(opts.Output, result.Raw, result.CapturedAt); err != nil {
			errs = append(errs, err)
		} else {
			slog.Info("snapshot written", "path", opts.Output, "entries", len(result.Raw))
			a.Printer.OK("数据已保存到 %s", opts.Output)
		}
	}

	if a.Recorder != nil {
		id, err := a.Recorder.Record(ctx, a.Monitor.Name(), result.Raw, result.CapturedAt)
		if err != nil {
			errs = append(errs, fmt.Errorf("archive snapshot: %w", err))
		} else {
			result.SnapshotID = id
			a.Printer.OK("快照已归档 %s", id)
		}
	}

	return errs
}

// Describe returns the operator-facing message for a pipeline error.
func Describe(err error) string {
	var fetchErr *monitor.FetchError
	var missing *monitor.MissingFieldError

	switch {
	case errors.As(err, &fetchErr) && errors.Is(err, monitor.ErrStatus):
		return fmt.Sprintf("请求失败，状态码 / リクエストに失敗しました。ステータスコード: %d", fetchErr.StatusCode)
	case errors.Is(err, monitor.ErrDecode):
		return "JSON 解析失败 / JSON のデコードに失敗しました: " + err.Error()
	case errors.Is(err, monitor.ErrRequest):
		return "网络请求期间发生错误 / リクエスト中にエラーが発生しました: " + err.Error()
	case errors.Is(err, monitor.ErrShape):
		return "返回的数据格式不正确或数据为空 / 受信したデータ形式が正しくないか、データが空です"
	case errors.As(err, &missing):
		return fmt.Sprintf("第 %d 条数据缺少字段 %s / エントリ %d にフィールド %s がありません", missing.Position+1, missing.Field, missing.Position+1, missing.Field)
	case errors.Is(err, presenter.ErrPersist):
		return "保存数据失败 / データの保存に失敗しました: " + err.Error()
	default:
		return "发生未知错误 / 不明なエラーが発生しました: " + err.Error()
	}
}

// Close closes all resources.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
