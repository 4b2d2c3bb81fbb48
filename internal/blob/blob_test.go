package blob

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestKey(t *testing.T) {
	now := time.UnixMilli(1693526400000)

	t.Run("embeds timestamp and prefix", func(t *testing.T) {
		got := Key("hero.jpg", now)
		if got != "public/1693526400000_hero.jpg" {
			t.Fatalf("Key() = %q", got)
		}
	})

	t.Run("sanitizes unsafe characters", func(t *testing.T) {
		got := Key("My Photo (final)!.PNG", now)
		if got != "public/1693526400000_my-photo-final.png" {
			t.Fatalf("Key() = %q", got)
		}
	})

	t.Run("empty name gets a placeholder", func(t *testing.T) {
		got := Key("   ", now)
		if got != "public/1693526400000_file" {
			t.Fatalf("Key() = %q", got)
		}
	})

	t.Run("same name different moments never collide", func(t *testing.T) {
		a := Key("hero.jpg", now)
		b := Key("hero.jpg", now.Add(time.Millisecond))
		if a == b {
			t.Fatalf("expected distinct keys, both %q", a)
		}
	})
}

func TestFSStorePutAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFS(FSConfig{BaseDir: dir, URLPrefix: "https://cdn.example.com/"})
	if err != nil {
		t.Fatalf("NewFS() error = %v", err)
	}
	ctx := context.Background()

	key := Key("hero.jpg", time.UnixMilli(1693526400000))
	url, err := store.Put(ctx, key, "image/jpeg", strings.NewReader("jpeg-bytes"))
	if err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if url != "https://cdn.example.com/"+key {
		t.Fatalf("Put() url = %q", url)
	}

	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(key)))
	if err != nil {
		t.Fatalf("object not written: %v", err)
	}
	if string(data) != "jpeg-bytes" {
		t.Fatalf("object content = %q", data)
	}

	if err := store.Delete(ctx, key); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(key))); !os.IsNotExist(err) {
		t.Fatalf("object still present after delete: %v", err)
	}

	t.Run("delete of missing object is silent", func(t *testing.T) {
		if err := store.Delete(ctx, key); err != nil {
			t.Fatalf("Delete() of missing object error = %v", err)
		}
	})

	t.Run("rejects traversal keys", func(t *testing.T) {
		if _, err := store.Put(ctx, "../escape", "", strings.NewReader("x")); err == nil {
			t.Fatal("expected error for traversal key")
		}
	})
}

func TestMemoryStore(t *testing.T) {
	store := NewMemory("mem://media")
	ctx := context.Background()

	url, err := store.Put(ctx, "public/1_a.png", "image/png", strings.NewReader("png"))
	if err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if url != "mem://media/public/1_a.png" {
		t.Fatalf("Put() url = %q", url)
	}

	data, contentType, ok := store.Object("public/1_a.png")
	if !ok || string(data) != "png" || contentType != "image/png" {
		t.Fatalf("Object() = %q, %q, %v", data, contentType, ok)
	}

	if err := store.Delete(ctx, "public/1_a.png"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("expected empty store, got %d objects", store.Len())
	}
}
