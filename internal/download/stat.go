package download

import "os"

func statOK(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
