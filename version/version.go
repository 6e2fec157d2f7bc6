// Package version は現在のバージョンの表示と、新しいリリースの確認を行う。
package version

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/mod/semver"

	"github.com/kakkky/jsconsole/errs"
)

// VERSION は現在のjsconsoleのバージョンを表す
const VERSION = "v0.3.0"

const (
	latestReleaseURL = "https://api.github.com/repos/kakkky/jsconsole/releases/latest"
	cacheFileName    = "version.json"
	cacheTTL         = 24 * time.Hour
)

// PrintVersion は現在のjsconsoleのバージョンを表示する
func PrintVersion(w io.Writer) {
	fmt.Fprintln(w, "jsconsole "+VERSION)
}

//go:generate mockgen -package=version -source=./version.go -destination=./release_fetcher_mock.go
type releaseFetcher interface {
	fetchLatestVersion() (string, error)
}

type latestVersionCache struct {
	LastChecked   time.Time `json:"last_checked"`
	LatestVersion string    `json:"latest_version"`
}

// Checker は最新のリリースを確認する
// 確認結果は一日キャッシュする
type Checker struct {
	cacheDir string
	fetcher  releaseFetcher
	now      func() time.Time
}

// NewChecker はCheckerのインスタンスを生成する
func NewChecker(cacheDir string) *Checker {
	return &Checker{
		cacheDir: cacheDir,
		fetcher:  newGithubFetcher(http.DefaultClient, latestReleaseURL),
		now:      time.Now,
	}
}

// IsLatestVersion は現在のバージョンが最新かどうかを判定し、最新のバージョンと共に返す
func (c *Checker) IsLatestVersion() (bool, string, error) {
	cache, err := c.readCache()
	if err != nil {
		return false, "", err
	}
	// キャッシュが有効であれば、キャッシュにあるlatest_versionと比較する
	if cache != nil && c.now().Sub(cache.LastChecked) < cacheTTL {
		return isLatest(cache.LatestVersion), cache.LatestVersion, nil
	}

	latestVersion, err := c.fetcher.fetchLatestVersion()
	if err != nil {
		return false, "", err
	}
	if err := c.writeCache(&latestVersionCache{LastChecked: c.now(), LatestVersion: latestVersion}); err != nil {
		return false, "", err
	}
	return isLatest(latestVersion), latestVersion, nil
}

// isLatest はリリースのタグが現在のバージョンより新しくなければ true を返す
// semverとして解釈できないタグは無視する
func isLatest(latestVersion string) bool {
	if !semver.IsValid(latestVersion) {
		return true
	}
	return semver.Compare(VERSION, latestVersion) >= 0
}

func (c *Checker) cachePath() string {
	return filepath.Join(c.cacheDir, cacheFileName)
}

// readCache はキャッシュを読み込む
// ファイルが存在しない場合は nil を返す
func (c *Checker) readCache() (*latestVersionCache, error) {
	content, err := os.ReadFile(c.cachePath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.NewInternalError("failed to read version cache").Wrap(err)
	}

	var cache latestVersionCache
	if err := json.Unmarshal(content, &cache); err != nil {
		// 壊れたキャッシュは無かったものとして扱う
		return nil, nil
	}
	return &cache, nil
}

func (c *Checker) writeCache(cache *latestVersionCache) error {
	if err := os.MkdirAll(c.cacheDir, 0o755); err != nil {
		return errs.NewInternalError("failed to create cache directory").Wrap(err)
	}
	content, err := json.MarshalIndent(cache, "", "    ")
	if err != nil {
		return errs.NewInternalError("failed to marshal version cache").Wrap(err)
	}
	if err := os.WriteFile(c.cachePath(), content, 0o644); err != nil {
		return errs.NewInternalError("failed to write version cache").Wrap(err)
	}
	return nil
}

type releasesInfoResponse struct {
	LatestVersion string `json:"tag_name"`
}

type githubFetcher struct {
	client *http.Client
	url    string
}

func newGithubFetcher(client *http.Client, url string) *githubFetcher {
	return &githubFetcher{
		client: client,
		url:    url,
	}
}

func (gf *githubFetcher) fetchLatestVersion() (string, error) {
	resp, err := gf.client.Get(gf.url)
	if err != nil {
		return "", errs.NewInternalError("failed to fetch latest release").Wrap(err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			errs.HandleError(err)
		}
	}()
	if resp.StatusCode != http.StatusOK {
		return "", errs.NewInternalError(fmt.Sprintf("unexpected status fetching latest release: %s", resp.Status))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errs.NewInternalError("failed to read response body").Wrap(err)
	}
	var releasesInfo releasesInfoResponse
	if err := json.Unmarshal(body, &releasesInfo); err != nil {
		return "", errs.NewInternalError("failed to unmarshal response body").Wrap(err)
	}
	return releasesInfo.LatestVersion, nil
}

var noteStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("12")).
	Padding(1, 2)

// NoteLatestVersion は新しいバージョンが存在する場合の通知を返す
func NoteLatestVersion(latestVersion string) string {
	return noteStyle.Render(fmt.Sprintf(
		"NOTE\n\nNew version available! jsconsole %s (you have %s)\n\nPlease update with:\n\n  go install github.com/kakkky/jsconsole/cmd/jsconsole@latest",
		latestVersion, VERSION,
	))
}
