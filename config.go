package bookstore

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config names the backing files. The zero value is not usable; start
// from DefaultConfig.
type Config struct {
	Accounts     string `toml:"accounts"`
	Books        string `toml:"books"`
	Transactions string `toml:"transactions"`
	Audit        string `toml:"audit"`
}

// DefaultConfig returns the conventional file names, rooted at dir.
func DefaultConfig(dir string) Config {
	return Config{
		Accounts:     filepath.Join(dir, "accounts.dat"),
		Books:        filepath.Join(dir, "books.dat"),
		Transactions: filepath.Join(dir, "transactions.dat"),
		Audit:        filepath.Join(dir, "logs.txt"),
	}
}

// LoadConfig reads a TOML config file. Absent file means defaults;
// fields left unset in the file keep their default value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig(".")
	if path == "" {
		return cfg, nil
	}
	_, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig("."), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
