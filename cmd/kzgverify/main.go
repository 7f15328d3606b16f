// Command kzgverify checks EIP-4844 KZG proofs from the command line: a
// single (commitment, z, y, proof) opening, a (blob, commitment, proof)
// triple, or a batch of triples read from a file, one per line. Grounded on
// vocdoni-davinci-node/cmd/send-blob/main.go's pflag + log wiring.
package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/vocdoni/go-kzg4844/config"
	"github.com/vocdoni/go-kzg4844/kzgverify"
	"github.com/vocdoni/go-kzg4844/log"
	"github.com/vocdoni/go-kzg4844/trustedsetup"
	"github.com/vocdoni/go-kzg4844/types"

	"github.com/spf13/pflag"
)

func main() {
	setupPath := pflag.String("trusted-setup", "", "Path to the trusted setup file (defaults to $KZG_TRUSTED_SETUP_PATH or ./trusted_setup.txt)")
	logLevel := pflag.String("loglevel", "info", "Log level: debug, info, warn, error")

	commitmentHex := pflag.String("commitment", "", "Hex-encoded 48-byte KZG commitment (required)")
	proofHex := pflag.String("proof", "", "Hex-encoded 48-byte KZG proof (required)")
	zHex := pflag.String("z", "", "Hex-encoded 32-byte evaluation point (single-opening mode)")
	yHex := pflag.String("y", "", "Hex-encoded 32-byte claimed evaluation (single-opening mode)")
	blobHex := pflag.String("blob", "", "Hex-encoded 131072-byte blob (blob mode)")
	batchFile := pflag.String("batch", "", "Path to a batch file: one 'blob commitment proof' hex triple per line")

	pflag.Parse()
	log.Init(*logLevel, "stderr")

	setup, err := loadSetup(*setupPath)
	if err != nil {
		log.Fatalf("loading trusted setup: %v", err)
	}

	switch {
	case *batchFile != "":
		ok, err := runBatch(setup, *batchFile)
		report("batch", ok, err)
	case *blobHex != "":
		ok, err := runBlob(setup, *blobHex, *commitmentHex, *proofHex)
		report("blob", ok, err)
	default:
		ok, err := runSingle(setup, *commitmentHex, *zHex, *yHex, *proofHex)
		report("single", ok, err)
	}
}

func loadSetup(path string) (*trustedsetup.Setup, error) {
	if path == "" {
		return trustedsetup.Default(config.TrustedSetupPath)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()
	return trustedsetup.ParseTextSetup(f)
}

func runSingle(setup *trustedsetup.Setup, commitmentHex, zHex, yHex, proofHex string) (bool, error) {
	commitment, err := types.Bytes48FromHex(commitmentHex)
	if err != nil {
		return false, fmt.Errorf("commitment: %w", err)
	}
	z, err := types.Bytes32FromHex(zHex)
	if err != nil {
		return false, fmt.Errorf("z: %w", err)
	}
	y, err := types.Bytes32FromHex(yHex)
	if err != nil {
		return false, fmt.Errorf("y: %w", err)
	}
	proof, err := types.Bytes48FromHex(proofHex)
	if err != nil {
		return false, fmt.Errorf("proof: %w", err)
	}
	return kzgverify.VerifyKZGProof(setup, commitment, z, y, proof)
}

func runBlob(setup *trustedsetup.Setup, blobHex, commitmentHex, proofHex string) (bool, error) {
	blobBytes, err := decodeHexArg(blobHex)
	if err != nil {
		return false, fmt.Errorf("blob: %w", err)
	}
	blob, err := types.NewBlobFromBytes(blobBytes)
	if err != nil {
		return false, fmt.Errorf("blob: %w", err)
	}
	commitment, err := types.Bytes48FromHex(commitmentHex)
	if err != nil {
		return false, fmt.Errorf("commitment: %w", err)
	}
	proof, err := types.Bytes48FromHex(proofHex)
	if err != nil {
		return false, fmt.Errorf("proof: %w", err)
	}
	return kzgverify.VerifyBlobKZGProof(setup, blob, commitment, proof)
}

// runBatch reads one "blob commitment proof" hex triple per line.
func runBatch(setup *trustedsetup.Setup, path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("opening batch file %q: %w", path, err)
	}
	defer f.Close()

	var blobs []types.Blob
	var commitments, proofs []types.Bytes48

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 256*1024), 512*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return false, fmt.Errorf("batch file line %d: want 3 fields, got %d", lineNum, len(fields))
		}
		blobBytes, err := decodeHexArg(fields[0])
		if err != nil {
			return false, fmt.Errorf("batch file line %d blob: %w", lineNum, err)
		}
		blob, err := types.NewBlobFromBytes(blobBytes)
		if err != nil {
			return false, fmt.Errorf("batch file line %d blob: %w", lineNum, err)
		}
		commitment, err := types.Bytes48FromHex(fields[1])
		if err != nil {
			return false, fmt.Errorf("batch file line %d commitment: %w", lineNum, err)
		}
		proof, err := types.Bytes48FromHex(fields[2])
		if err != nil {
			return false, fmt.Errorf("batch file line %d proof: %w", lineNum, err)
		}
		blobs = append(blobs, blob)
		commitments = append(commitments, commitment)
		proofs = append(proofs, proof)
	}
	if err := scanner.Err(); err != nil {
		return false, fmt.Errorf("reading batch file: %w", err)
	}

	log.Infof("loaded %d triples from %s", len(blobs), path)
	return kzgverify.VerifyBlobKZGProofBatch(setup, blobs, commitments, proofs)
}

func decodeHexArg(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	return hex.DecodeString(s)
}

func report(mode string, ok bool, err error) {
	if err != nil {
		log.Errorf("%s verification error: %v", mode, err)
		os.Exit(2)
	}
	if ok {
		log.Infof("%s verification: VALID", mode)
		os.Exit(0)
	}
	log.Warnf("%s verification: INVALID", mode)
	os.Exit(1)
}
