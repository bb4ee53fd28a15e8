//go:build unit

package service

import (
	"context"
	"strings"
	"testing"
)

func TestObjectKey(t *testing.T) {
	key := ObjectKey("My Photo (1).JPG")
	if !strings.HasSuffix(key, "-my-photo-1-.jpg") {
		t.Errorf("key = %q, want suffix -my-photo-1-.jpg", key)
	}
	if strings.ToLower(key) != key {
		t.Errorf("key must be lowercase: %q", key)
	}
	if strings.ContainsAny(key, " ()") {
		t.Errorf("key must not contain unsafe characters: %q", key)
	}
}

func TestObjectKeyUnique(t *testing.T) {
	a := ObjectKey("image.png")
	b := ObjectKey("image.png")
	if a == b {
		t.Error("two uploads of the same filename must get distinct keys")
	}
	if !strings.HasSuffix(a, "-image.png") {
		t.Errorf("key must end with the cleaned filename: %q", a)
	}
}

func TestObjectKeyEmptyFilename(t *testing.T) {
	key := ObjectKey("???")
	if !strings.HasSuffix(key, "-upload") {
		t.Errorf("unusable filenames fall back to 'upload', got %q", key)
	}
}

func TestMediaStore(t *testing.T) {
	store := &mockObjectStore{}
	svc := NewMediaService(store)

	upload, err := svc.Store(context.Background(), "cover.jpg", "image/jpeg", []byte{0xff, 0xd8})
	if err != nil {
		t.Fatalf("Store returned error: %v", err)
	}
	if !store.uploadCalled {
		t.Error("expected object store upload to be called")
	}
	if upload.Path != store.lastKey {
		t.Errorf("returned path %q does not match stored key %q", upload.Path, store.lastKey)
	}
	if !strings.HasSuffix(upload.URL, upload.Path) {
		t.Errorf("URL %q should end with the key %q", upload.URL, upload.Path)
	}
}

func TestMediaStoreRejectsEmptyBody(t *testing.T) {
	store := &mockObjectStore{}
	svc := NewMediaService(store)

	_, err := svc.Store(context.Background(), "cover.jpg", "image/jpeg", nil)
	if err == nil || !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if store.uploadCalled {
		t.Error("nothing may be uploaded when the body is empty")
	}
}

func TestMediaRemove(t *testing.T) {
	store := &mockObjectStore{}
	svc := NewMediaService(store)

	if err := svc.Remove(context.Background(), "abc-cover.jpg"); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if !store.deleteCalled || store.lastKey != "abc-cover.jpg" {
		t.Errorf("delete not forwarded: called=%v key=%q", store.deleteCalled, store.lastKey)
	}
}

func TestMediaURLEmptyKey(t *testing.T) {
	svc := NewMediaService(&mockObjectStore{})
	if got := svc.URL(""); got != "" {
		t.Errorf("URL(\"\") = %q, want empty", got)
	}
}
