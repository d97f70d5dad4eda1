package state

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/urfave/cli"
	"go.uber.org/zap"

	"github.com/merklenet/statetrie/pkg/config"
	"github.com/merklenet/statetrie/pkg/trie"
	"github.com/merklenet/statetrie/pkg/util"
)

// NewCommands returns the state trie commands.
func NewCommands() []cli.Command {
	inputFlag := cli.StringFlag{
		Name:  "input, i",
		Usage: "YAML state file with key-value entries",
	}
	keyFlag := cli.StringFlag{
		Name:  "key, k",
		Usage: "Key, a plain string or 0x-prefixed hex",
	}
	return []cli.Command{
		{
			Name:   "root",
			Usage:  "compute the state root of a state file",
			Action: stateRoot,
			Flags:  []cli.Flag{inputFlag},
		},
		{
			Name:   "get",
			Usage:  "look up the value stored under a key",
			Action: getValue,
			Flags:  []cli.Flag{inputFlag, keyFlag},
		},
		{
			Name:   "proof",
			Usage:  "build a proof for a key against the state file",
			Action: buildProof,
			Flags: []cli.Flag{
				inputFlag,
				keyFlag,
				cli.StringFlag{
					Name:  "out, o",
					Usage: "Path to write the portable proof document to",
				},
			},
		},
		{
			Name:   "verify",
			Usage:  "verify a previously built proof document",
			Action: verifyProof,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "proof, p",
					Usage: "Path of the proof document",
				},
			},
		},
		{
			Name:   "dump",
			Usage:  "print the node structure of a state file",
			Action: dumpTrie,
			Flags:  []cli.Flag{inputFlag},
		},
	}
}

// buildTrie loads the state file and plays every entry into a fresh trie.
func buildTrie(ctx *cli.Context) (*trie.Trie, error) {
	path := ctx.String("input")
	if path == "" {
		return nil, cli.NewExitError("state file is missing", 1)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, cli.NewExitError(err, 1)
	}
	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, cli.NewExitError(err, 1)
	}
	defer func() { _ = log.Sync() }()

	tr := trie.NewTrie()
	for i, e := range cfg.Entries {
		key, err := e.KeyBytes()
		if err != nil {
			return nil, cli.NewExitError(fmt.Errorf("entry %d: %w", i, err), 1)
		}
		value, err := e.ValueBytes()
		if err != nil {
			return nil, cli.NewExitError(fmt.Errorf("entry %d: %w", i, err), 1)
		}
		if err := tr.Put(key, value); err != nil {
			return nil, cli.NewExitError(fmt.Errorf("entry %d: %w", i, err), 1)
		}
		log.Debug("entry added",
			zap.String("key", e.Key),
			zap.Int("valueSize", len(value)))
	}
	log.Info("state trie built",
		zap.Int("entries", len(cfg.Entries)),
		zap.String("root", tr.StateRoot().String()))
	return tr, nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	cc := zap.NewProductionConfig()
	cc.Level = lvl
	cc.Encoding = "console"
	cc.DisableCaller = true
	cc.OutputPaths = []string{"stderr"}
	return cc.Build()
}

func keyFromContext(ctx *cli.Context) ([]byte, error) {
	k := ctx.String("key")
	if k == "" {
		return nil, cli.NewExitError("key is missing", 1)
	}
	key, err := config.DecodeBytes(k)
	if err != nil {
		return nil, cli.NewExitError(err, 1)
	}
	return key, nil
}

func stateRoot(ctx *cli.Context) error {
	tr, err := buildTrie(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.App.Writer, "0x%s\n", tr.StateRoot())
	return nil
}

func getValue(ctx *cli.Context) error {
	tr, err := buildTrie(ctx)
	if err != nil {
		return err
	}
	key, err := keyFromContext(ctx)
	if err != nil {
		return err
	}
	value, err := tr.Get(key)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintf(ctx.App.Writer, "0x%s\n", hex.EncodeToString(value))
	return nil
}

func buildProof(ctx *cli.Context) error {
	tr, err := buildTrie(ctx)
	if err != nil {
		return err
	}
	key, err := keyFromContext(ctx)
	if err != nil {
		return err
	}
	value, err := tr.Get(key)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	proof, err := tr.GetProof(key)
	if err != nil {
		return cli.NewExitError(err, 1)
	}

	doc := config.ProofDocument{
		Root:  "0x" + tr.StateRoot().String(),
		Key:   "0x" + hex.EncodeToString(key),
		Value: "0x" + hex.EncodeToString(value),
		Proof: make([]string, len(proof)),
	}
	for i := range proof {
		doc.Proof[i] = "0x" + hex.EncodeToString(proof[i])
	}

	if out := ctx.String("out"); out != "" {
		if err := doc.Save(out); err != nil {
			return cli.NewExitError(err, 1)
		}
		return nil
	}
	fmt.Fprintf(ctx.App.Writer, "Root: %s\n", doc.Root)
	for _, e := range doc.Proof {
		fmt.Fprintln(ctx.App.Writer, e)
	}
	return nil
}

func verifyProof(ctx *cli.Context) error {
	path := ctx.String("proof")
	if path == "" {
		return cli.NewExitError("proof file is missing", 1)
	}
	doc, err := config.LoadProof(path)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	root, err := util.Uint256DecodeString(doc.Root)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	key, err := config.DecodeBytes(doc.Key)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	value, err := config.DecodeBytes(doc.Value)
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	proof := make([][]byte, len(doc.Proof))
	for i, e := range doc.Proof {
		if proof[i], err = config.DecodeBytes(e); err != nil {
			return cli.NewExitError(err, 1)
		}
	}

	if !trie.VerifyProof(root, key, value, proof) {
		return cli.NewExitError("proof is INVALID", 1)
	}
	fmt.Fprintln(ctx.App.Writer, "proof is valid")
	return nil
}

func dumpTrie(ctx *cli.Context) error {
	tr, err := buildTrie(ctx)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(tr.Root(), "", "  ")
	if err != nil {
		return cli.NewExitError(err, 1)
	}
	fmt.Fprintln(ctx.App.Writer, string(data))
	return nil
}
