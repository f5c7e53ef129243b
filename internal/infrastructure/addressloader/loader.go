package addressloader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"bscscan_node/internal/app/port"
	"bscscan_node/internal/pkg/utils"
)

// AddressFileLoader implements port.AddressProvider by reading a text file with
// one address (or comma-separated addresses) per line. Blank lines and lines
// starting with '#' are ignored. Entries are not validated.
type AddressFileLoader struct {
	filePath string
	logger   port.Logger
}

// NewAddressFileLoader creates a new AddressFileLoader.
func NewAddressFileLoader(filePath string, logger port.Logger) port.AddressProvider {
	return &AddressFileLoader{filePath: filePath, logger: logger}
}

// GetAddresses reads addresses from the configured file path. "-" reads stdin.
func (l *AddressFileLoader) GetAddresses() ([]string, error) {
	var r io.Reader
	if l.filePath == "-" {
		r = os.Stdin
	} else {
		file, err := os.Open(l.filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open address file %s: %w", l.filePath, err)
		}
		defer file.Close()
		r = file
	}

	addresses, err := ReadAddresses(r)
	if err != nil {
		return nil, fmt.Errorf("error scanning address file %s: %w", l.filePath, err)
	}

	l.logger.Debug("Addresses loaded from file", "count", len(addresses), "path", l.filePath)
	return addresses, nil
}

// ReadAddresses scans r line by line.
func ReadAddresses(r io.Reader) ([]string, error) {
	var addresses []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		addresses = append(addresses, utils.SplitList(line)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return addresses, nil
}
