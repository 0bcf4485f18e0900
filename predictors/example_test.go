// SPDX-License-Identifier: MIT

package predictors_test

import (
	"fmt"

	"github.com/katalvlaran/lvlsim/predictors"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleDistance
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Three kernels over hand-checkable vectors: orthogonal unit vectors under
//	cosine, a 1-2-2 offset under Euclidean (norm 3), and a 3-4-5 offset
//	under Minkowski3 (27+64+125 = 216 = 6³).
//
// Use case:
//
//	Choosing the distance kernel for a vector-norm predictor.
//
// Complexity: O(d) per call
//
// ExampleDistance evaluates each kernel on known geometry.
func ExampleDistance() {
	zero := []float64{0, 0, 0}

	cos, _ := predictors.Distance([]float64{1, 0}, []float64{0, 1}, predictors.Cosine)
	euc, _ := predictors.Distance(zero, []float64{1, 2, 2}, predictors.Euclidean)
	mink, _ := predictors.Distance(zero, []float64{3, 4, 5}, predictors.Minkowski3)

	fmt.Printf("cosine(e1,e2)=%.0f\n", cos)
	fmt.Printf("Euclidean(0,(1,2,2))=%.0f\n", euc)
	fmt.Printf("Minkowski3(0,(3,4,5))=%.0f\n", mink)
	// Output:
	// cosine(e1,e2)=1
	// Euclidean(0,(1,2,2))=3
	// Minkowski3(0,(3,4,5))=6
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleBuildVectorRDM
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A vector source that covers only two of three requested words. The build
//	succeeds anyway: the unknown word becomes a NaN row and column plus a
//	Report line, and CompleteLabels+ForSubset narrows to the usable core.
//
// Use case:
//
//	Building predictor RDMs from embedding or norm tables whose vocabulary
//	never quite covers the experiment's condition words.
//
// Complexity: O(n) fetches + O(n²·d) distances
//
// ExampleBuildVectorRDM demonstrates the degrade-then-narrow flow.
func ExampleBuildVectorRDM() {
	src := vecTable{
		"reach": {0, 0},
		"grasp": {3, 4},
		// "touch" is not in the vocabulary.
	}
	words := []string{"reach", "grasp", "touch"}

	rdm, report, err := predictors.BuildVectorRDM(src, words, predictors.Euclidean)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println("report:", report)

	core := rdm.CompleteLabels()
	fmt.Println("complete core:", core)

	sub, _ := rdm.ForSubset(core)
	d, _ := sub.Value("reach", "grasp")
	fmt.Printf("d(reach,grasp)=%.0f\n", d)
	// Output:
	// report: 1 missing word(s), 0 missing pair(s)
	// complete core: [reach grasp]
	// d(reach,grasp)=5
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleIntersection
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Trim a condition list to the words every collaborating source can serve
//	before any matrix is built, keeping the primary order.
//
// ExampleIntersection intersects a word list with two vocabularies.
func ExampleIntersection() {
	conditions := []string{"reach", "grasp", "touch", "point"}

	usable := predictors.Intersection(conditions,
		vocabList{"point", "grasp", "reach"},
		vocabList{"reach", "point", "wave"},
	)

	fmt.Println(usable)
	// Output:
	// [reach point]
}
