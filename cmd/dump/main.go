package main

import (
	"encoding/base64"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/util"
)

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	contractList := flag.String("contracts", "", "Comma-separated list of name:hash pairs of the deployed contracts")
	outDir := flag.String("out", "testdata", "Directory to write the storage dumps to")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *contractList == "":
		log.Fatal("missing contract list")
	}

	contracts, err := parseContracts(*contractList)
	if err != nil {
		log.Fatal(err)
	}

	err = os.MkdirAll(*outDir, 0700)
	if err != nil {
		log.Fatal(fmt.Errorf("create output dir: %w", err))
	}

	err = _dump(*neoRPCEndpoint, *outDir, contracts)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("contract storage is successfully dumped to '%s/'\n", *outDir)
}

type namedContract struct {
	name string
	hash util.Uint160
}

// parseContracts splits a "name:hash,name:hash" list into contract references.
func parseContracts(s string) ([]namedContract, error) {
	var result []namedContract

	for _, pair := range strings.Split(s, ",") {
		name, rawHash, found := strings.Cut(pair, ":")
		if !found {
			return nil, fmt.Errorf("invalid contract reference '%s', expected name:hash", pair)
		}

		h, err := util.Uint160DecodeStringLE(strings.TrimPrefix(rawHash, "0x"))
		if err != nil {
			return nil, fmt.Errorf("invalid hash of contract '%s': %w", name, err)
		}

		result = append(result, namedContract{name: name, hash: h})
	}

	return result, nil
}

// storageItem is a single key-value pair of a contract storage dump.
type storageItem struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func _dump(neoBlockchainRPCEndpoint, rootDir string, contracts []namedContract) error {
	b, err := newRemoteBlockChain(neoBlockchainRPCEndpoint)
	if err != nil {
		return fmt.Errorf("init remote blockchain: %w", err)
	}

	defer b.close()

	for _, ctr := range contracts {
		log.Printf("Processing contract '%s'...\n", ctr.name)

		var items []storageItem

		err = b.iterateContractStorage(ctr.hash, func(key, value []byte) error {
			items = append(items, storageItem{
				Key:   base64.StdEncoding.EncodeToString(key),
				Value: base64.StdEncoding.EncodeToString(value),
			})
			return nil
		})
		if err != nil {
			return fmt.Errorf("iterate '%s' contract storage: %w", ctr.name, err)
		}

		err = writeDump(filepath.Join(rootDir, ctr.name+".json"), items)
		if err != nil {
			return fmt.Errorf("write '%s' contract dump: %w", ctr.name, err)
		}
	}

	return nil
}

func writeDump(path string, items []storageItem) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")

	err = enc.Encode(items)
	if err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
