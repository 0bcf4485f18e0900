// SPDX-License-Identifier: MIT
// Package: main (lvlsim)
//
// Purpose:
//   - Batch analysis runner: load a model embedding, build its similarity
//     matrices, transform them into triplet-probability RDMs over a condition
//     subset, and score every model against a reference RDM (and against the
//     other models) with a randomization NHST. Outcomes go to a CSV report.
//
// Flow:
//  1. Load the embedding vector table, the reference RDM, the optional
//     condition subset and the optional LSA similarity grid.
//  2. Resolve the usable subset: requested words present in every source.
//  3. Per dimension variant: dot-product similarity over the full
//     vocabulary, mean-softmax triplet probabilities over the subset
//     (through a shared cache), then the 1-x RDM view.
//  4. Correlate model vs reference and model vs model with permutation
//     p-values; log each outcome and save the report.

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/katalvlaran/lvlsim/norms"
	"github.com/katalvlaran/lvlsim/predictors"
	"github.com/katalvlaran/lvlsim/simcache"
	"github.com/katalvlaran/lvlsim/simmat"
)

// minConditions is the smallest subset the runner accepts: below three
// conditions the condensed form has under two entries and every correlation
// is undefined.
const minConditions = 3

// model pairs a display name with an RDM ready for comparison.
type model struct {
	name string
	rdm  *simmat.RDM
}

// labelSet adapts a plain label slice to predictors.Vocabulary for
// Intersection.
type labelSet []string

func (s labelSet) Words() []string { return s }

func main() {
	configPath := flag.String("config", "lvlsim.yaml", "path to the analysis configuration")
	flag.Parse()

	cfg, err := Load(*configPath)
	if err != nil {
		log.Fatalf("lvlsim: %v", err)
	}

	if err := run(cfg); err != nil {
		log.Fatalf("lvlsim: %v", err)
	}
}

func run(cfg *Config) error {
	table, err := loadEmbedding(cfg.Embedding)
	if err != nil {
		return fmt.Errorf("embedding: %w", err)
	}
	words, features := table.Dims()
	log.Printf("embedding: %d words x %d features", words, features)

	reference, err := loadReference(cfg.Reference.Path)
	if err != nil {
		return fmt.Errorf("reference: %w", err)
	}

	var lsa *simmat.SimilarityMatrix
	if cfg.LSA.Path != "" {
		if lsa, err = loadLSA(cfg.LSA.Path); err != nil {
			return fmt.Errorf("lsa: %w", err)
		}
	}

	subset, err := resolveSubset(cfg, table, reference, lsa)
	if err != nil {
		return err
	}
	log.Printf("subset: %d conditions", len(subset))

	refSub, err := reference.ForSubset(subset)
	if err != nil {
		return fmt.Errorf("reference subset: %w", err)
	}

	models, err := buildModels(cfg, table, lsa, subset)
	if err != nil {
		return err
	}

	opts := cfg.Randomization.options()
	results := newResultSet(cfg.Output.Precision)
	for _, m := range models {
		if err := compare(results, m.name+" vs reference", m.rdm, refSub, opts); err != nil {
			return err
		}
	}
	for i := 0; i < len(models); i++ {
		for j := i + 1; j < len(models); j++ {
			name := models[i].name + " vs " + models[j].name
			if err := compare(results, name, models[i].rdm, models[j].rdm, opts); err != nil {
				return err
			}
		}
	}

	if err := results.save(cfg.Output.Path); err != nil {
		return err
	}
	log.Printf("wrote %d comparisons to %s", len(results.rows), cfg.Output.Path)

	return nil
}

// loadEmbedding reads the vector table, joining a separate word list when the
// export keeps labels and values apart.
func loadEmbedding(cfg EmbeddingConfig) (*norms.VectorTable, error) {
	f, err := os.Open(cfg.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if cfg.WordsPath == "" {
		return norms.ReadVectorTable(f, cfg.tableOptions())
	}

	wf, err := os.Open(cfg.WordsPath)
	if err != nil {
		return nil, err
	}
	defer wf.Close()

	words, err := norms.ReadWordList(wf)
	if err != nil {
		return nil, err
	}
	grid, err := norms.ReadMatrix(f, cfg.tableOptions())
	if err != nil {
		return nil, err
	}

	return norms.NewVectorTable(words, grid)
}

// loadReference reads the labelled dissimilarity grid.
func loadReference(path string) (*simmat.RDM, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	labels, data, err := norms.ReadLabelledCSV(f, norms.DefaultTableOptions())
	if err != nil {
		return nil, err
	}

	return simmat.NewRDM(data, labels)
}

// loadLSA reads the labelled similarity grid. Published grids have holes, so
// missing entries are allowed here and excluded through CompleteLabels during
// subset resolution.
func loadLSA(path string) (*simmat.SimilarityMatrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	labels, data, err := norms.ReadLabelledCSV(f, norms.DefaultTableOptions())
	if err != nil {
		return nil, err
	}

	return simmat.NewSimilarity(data, labels, simmat.WithAllowMissing())
}

// resolveSubset returns the requested conditions filtered to those every
// source can score: embedding vocabulary, reference labels, and (when
// configured) the complete core of the LSA grid.
func resolveSubset(cfg *Config, table *norms.VectorTable, reference *simmat.RDM, lsa *simmat.SimilarityMatrix) ([]string, error) {
	requested := reference.Labels()
	if cfg.Subset.Path != "" {
		f, err := os.Open(cfg.Subset.Path)
		if err != nil {
			return nil, fmt.Errorf("subset: %w", err)
		}
		defer f.Close()

		if requested, err = norms.ReadWordList(f); err != nil {
			return nil, fmt.Errorf("subset: %w", err)
		}
	}

	vocabs := []predictors.Vocabulary{table, labelSet(reference.Labels())}
	if lsa != nil {
		vocabs = append(vocabs, labelSet(lsa.CompleteLabels()))
	}

	usable := predictors.Intersection(requested, vocabs...)
	if len(usable) < len(requested) {
		log.Printf("subset: %d of %d requested words usable across all sources",
			len(usable), len(requested))
	}
	if len(usable) < minConditions {
		return nil, fmt.Errorf("subset: %d usable conditions, want >= %d", len(usable), minConditions)
	}

	return usable, nil
}

// buildModels turns the embedding (one model per dimension variant) and the
// optional LSA grid into subset RDMs. Softmax transforms run through one
// shared in-memory cache keyed by model name and subset.
func buildModels(cfg *Config, table *norms.VectorTable, lsa *simmat.SimilarityMatrix, subset []string) ([]model, error) {
	cache := simcache.NewMemoryCache()

	var models []model
	for _, dims := range cfg.Embedding.variants() {
		name := modelName(dims)
		sim, err := embeddingSimilarity(table, dims)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		probs, err := simcache.CachedMeanSoftmax(cache, sim, name, subset)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		rdm, err := probs.ToRDM()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		models = append(models, model{name: name, rdm: rdm})
	}

	if lsa != nil {
		sub, err := lsa.ForSubset(subset)
		if err != nil {
			return nil, fmt.Errorf("lsa: %w", err)
		}
		rdm, err := sub.ToRDM()
		if err != nil {
			return nil, fmt.Errorf("lsa: %w", err)
		}
		models = append(models, model{name: "lsa", rdm: rdm})
	}

	return models, nil
}

// modelName labels one dimension variant.
func modelName(dims int) string {
	if dims == 0 {
		return "embedding"
	}

	return fmt.Sprintf("embedding[%d]", dims)
}

// embeddingSimilarity builds the dot-product similarity over the FULL
// vocabulary, optionally truncated to the leading dims columns. The softmax
// transform later restricts to the subset; ranking over the whole vocabulary
// is what makes the triplet probabilities comparable across subsets.
func embeddingSimilarity(table *norms.VectorTable, dims int) (*simmat.SimilarityMatrix, error) {
	words := table.Words()
	data, err := table.MatrixForWords(words)
	if err != nil {
		return nil, err
	}

	_, cols := data.Dims()
	if dims > cols {
		return nil, fmt.Errorf("dims %d exceeds embedding width %d", dims, cols)
	}
	if dims > 0 && dims < cols {
		return simmat.ByDotProduct(data.Slice(0, len(words), 0, dims), words)
	}

	return simmat.ByDotProduct(data, words)
}

// compare scores first against second and records the outcome. An undefined
// correlation (constant condensed form) degrades to an NA row instead of
// aborting the run.
func compare(rs *resultSet, name string, first, second *simmat.RDM, opts simmat.RandomizationOptions) error {
	res, err := first.CorrelateWithNHST(second, opts)
	if errors.Is(err, simmat.ErrUndefinedCorrelation) {
		log.Printf("%s: correlation undefined", name)
		rs.addUndefined(name, opts.NPerms, first.Dim())

		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	log.Printf("%s: r=%.6f; p=%.6f (n=%d)", name, res.R, res.P, res.NPerms)
	rs.add(name, res, first.Dim())

	return nil
}
