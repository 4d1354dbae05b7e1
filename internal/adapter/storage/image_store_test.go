package storage_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Sp4ce14/ProjectManagerApp/internal/adapter/storage"
)

func TestValidate_AcceptsAllowedExtensions(t *testing.T) {
	for _, name := range []string{"photo.jpg", "photo.JPEG", "logo.png", "banner.WEBP"} {
		require.NoError(t, storage.Validate(name, 1024), name)
	}
}

func TestValidate_RejectsDisallowedExtension(t *testing.T) {
	err := storage.Validate("malware.exe", 10)
	require.ErrorIs(t, err, storage.ErrFileType)
}

func TestValidate_RejectsEmptyFile(t *testing.T) {
	err := storage.Validate("photo.png", 0)
	require.ErrorIs(t, err, storage.ErrNoFile)
}

func TestValidate_RejectsOversizedFile(t *testing.T) {
	err := storage.Validate("photo.png", 6*1024*1024)
	require.ErrorIs(t, err, storage.ErrFileTooLarge)
}

func TestSave_WritesFileAndBuildsURL(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images")
	store := storage.NewDiskImageStore(dir)

	content := "fake image bytes"
	imageURL, err := store.Save("photo.PNG", int64(len(content)), strings.NewReader(content), "http://localhost:8080")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(imageURL, "http://localhost:8080/images/"))
	require.True(t, strings.HasSuffix(imageURL, ".png"))

	storedName := imageURL[strings.LastIndex(imageURL, "/")+1:]
	data, err := os.ReadFile(filepath.Join(dir, storedName))
	require.NoError(t, err)
	require.Equal(t, content, string(data))
}

func TestSave_UniqueNamesPerUpload(t *testing.T) {
	store := storage.NewDiskImageStore(t.TempDir())

	first, err := store.Save("photo.jpg", 4, strings.NewReader("aaaa"), "http://host")
	require.NoError(t, err)
	second, err := store.Save("photo.jpg", 4, strings.NewReader("bbbb"), "http://host")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
}

func TestSave_RejectsInvalidUploadWithoutWriting(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "images")
	store := storage.NewDiskImageStore(dir)

	_, err := store.Save("notes.txt", 10, strings.NewReader("0123456789"), "http://host")
	require.ErrorIs(t, err, storage.ErrFileType)

	_, statErr := os.Stat(dir)
	require.True(t, os.IsNotExist(statErr))
}

func TestRemove_DeletesStoredFile(t *testing.T) {
	dir := t.TempDir()
	store := storage.NewDiskImageStore(dir)

	imageURL, err := store.Save("photo.jpg", 4, strings.NewReader("data"), "http://localhost:8080")
	require.NoError(t, err)

	require.NoError(t, store.Remove(imageURL))

	storedName := imageURL[strings.LastIndex(imageURL, "/")+1:]
	_, statErr := os.Stat(filepath.Join(dir, storedName))
	require.True(t, os.IsNotExist(statErr))
}

func TestRemove_MissingFileIsNotAnError(t *testing.T) {
	store := storage.NewDiskImageStore(t.TempDir())
	require.NoError(t, store.Remove("http://localhost:8080/images/does-not-exist.png"))
}
