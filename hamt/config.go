package hamt

import (
	"github.com/cockroachdb/errors"
	"github.com/op/go-logging"

	"github.com/aglyzov/go-hamt/bitcount"
)

const (
	maxChunkWidth = 6 // 2^6 == 64 == bits in a bitmap

	defaultChunkWidth64 = 6
	defaultChunkWidth32 = 5
)

// Option is a function that configures a Map.
type Option func(*config)

type config struct {
	chunkWidth uint
	popCounter bitcount.Counter
	logger     *logging.Logger
}

// UseChunkWidth sets the number of hash bits consumed by every trie level.
//
// The default is 6 for 64-bit hashers and 5 for 32-bit ones.
func UseChunkWidth(width uint) Option {
	return func(cfg *config) {
		cfg.chunkWidth = width
	}
}

// UsePopCounter sets the bit counting engine. The default is bitcount.Table.
func UsePopCounter(count bitcount.Counter) Option {
	return func(cfg *config) {
		if count != nil {
			cfg.popCounter = count
		}
	}
}

func UseLogger(logger *logging.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// params is a validated configuration shared by all tables of a Map.
type params[K any] struct {
	hasher     Hasher[K]
	hashWidth  uint
	chunkWidth uint
	chunkMask  uint64
	maxLevel   uint // deepest table level
	popCount   bitcount.Counter
	log        *logging.Logger
}

func buildConfig(hashWidth uint, opts []Option) (config, error) {
	cfg := config{
		popCounter: bitcount.Table,
		logger:     log,
	}

	switch hashWidth {
	case 64:
		cfg.chunkWidth = defaultChunkWidth64
	case 32:
		cfg.chunkWidth = defaultChunkWidth32
	default:
		return cfg, errors.Newf("hamt: unsupported hash width %d (must be 32 or 64)", hashWidth)
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.chunkWidth == 0 || cfg.chunkWidth > maxChunkWidth {
		return cfg, errors.Newf("hamt: chunk width %d is out of range [1..%d]", cfg.chunkWidth, maxChunkWidth)
	}

	return cfg, nil
}

// CheckConfig reports whether New would accept a hasher of the given width
// together with the options.
func CheckConfig(hashWidth uint, opts ...Option) error {
	_, err := buildConfig(hashWidth, opts)
	return err
}

func newParams[K any](hasher Hasher[K], opts []Option) (*params[K], error) {
	if hasher == nil {
		return nil, errors.New("hamt: nil hasher")
	}

	width := hasher.Width()

	cfg, err := buildConfig(width, opts)
	if err != nil {
		return nil, err
	}

	return &params[K]{
		hasher:     hasher,
		hashWidth:  width,
		chunkWidth: cfg.chunkWidth,
		chunkMask:  (1 << cfg.chunkWidth) - 1,
		maxLevel:   (width - 1) / cfg.chunkWidth, // largest L having L*C < W
		popCount:   cfg.popCounter,
		log:        cfg.logger,
	}, nil
}
