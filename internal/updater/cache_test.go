package updater

import (
	"testing"
	"time"
)

func TestCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()

	cache := &VersionCache{
		LatestVersion:   "v1.2.0",
		CurrentVersion:  "v1.1.0",
		CheckedAt:       time.Now().Truncate(time.Second),
		UpdateAvailable: true,
	}
	if err := SaveCache(dir, cache); err != nil {
		t.Fatalf("SaveCache failed: %v", err)
	}

	loaded, err := LoadCache(dir)
	if err != nil {
		t.Fatalf("LoadCache failed: %v", err)
	}
	if loaded == nil {
		t.Fatal("LoadCache returned nil after save")
	}
	if loaded.LatestVersion != cache.LatestVersion || !loaded.UpdateAvailable {
		t.Errorf("loaded cache %+v does not match saved %+v", loaded, cache)
	}
}

func TestLoadCacheMissing(t *testing.T) {
	cache, err := LoadCache(t.TempDir())
	if err != nil {
		t.Fatalf("LoadCache on empty dir failed: %v", err)
	}
	if cache != nil {
		t.Errorf("expected nil cache for missing file, got %+v", cache)
	}
}

func TestIsCacheStale(t *testing.T) {
	if !IsCacheStale(nil, DefaultCacheMaxAge) {
		t.Error("nil cache should be stale")
	}

	fresh := &VersionCache{CheckedAt: time.Now()}
	if IsCacheStale(fresh, DefaultCacheMaxAge) {
		t.Error("fresh cache reported stale")
	}

	old := &VersionCache{CheckedAt: time.Now().Add(-48 * time.Hour)}
	if !IsCacheStale(old, DefaultCacheMaxAge) {
		t.Error("two-day-old cache reported fresh")
	}
}
