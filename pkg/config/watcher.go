package config

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce 同一文件的连续事件在该间隔内只触发一次
const reloadDebounce = 100 * time.Millisecond

// WatchCombatData 监听数据目录，表文件变化时重新加载全部数据表
// 加载成功后在监听协程中调用 onReload；加载失败只记录日志，保留旧数据。
// ctx 取消后停止监听。
func WatchCombatData(ctx context.Context, dir string, onReload func(*CombatData)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create data watcher: %w", err)
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to watch data dir %s: %w", dir, err)
	}

	log.Printf("[DataWatcher] Watching %s for changes", dir)
	go runWatcher(ctx, w, dir, onReload)
	return nil
}

func runWatcher(ctx context.Context, w *fsnotify.Watcher, dir string, onReload func(*CombatData)) {
	defer w.Close()

	last := make(map[string]time.Time)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !isDataFile(event.Name) {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < reloadDebounce {
				continue
			}

			// 编辑器保存时可能先截断文件，加载失败不计入去抖，等待后续写入
			data, err := LoadCombatData(dir)
			if err != nil {
				log.Printf("[DataWatcher] Warning: reload after %s failed: %v", filepath.Base(event.Name), err)
				continue
			}
			last[event.Name] = now
			log.Printf("[DataWatcher] Reloaded combat data (%s changed)", filepath.Base(event.Name))
			onReload(data)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Printf("[DataWatcher] Warning: %v", err)
		}
	}
}

func isDataFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}
