package util

import (
	"os"
	"path"
	"strings"
)

// WriteToFile writes the given lines to savePath, creating the parent
// directory if needed.
func WriteToFile(savePath string, content ...string) error {
	dir := path.Dir(savePath)
	if _, err := os.Stat(dir); err != nil {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return err
		}
	}
	return os.WriteFile(savePath, []byte(strings.Join(content, "\n")+"\n"), 0644)
}

// AppendToFile appends the given lines to savePath, creating the file and
// its parent directory if they do not exist.
func AppendToFile(savePath string, content ...string) error {
	dir := path.Dir(savePath)
	if _, err := os.Stat(dir); err != nil {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return err
		}
	}
	f, err := os.OpenFile(savePath, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, s := range content {
		if _, err = f.WriteString(s + "\n"); err != nil {
			return err
		}
	}
	return nil
}
