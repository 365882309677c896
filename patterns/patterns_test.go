package patterns_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/pivotal-cf/pw-alert/patterns"
	"github.com/pivotal-cf/pw-alert/patterns/matchers"
)

var _ = Describe("Detector", func() {
	var detector patterns.Detector

	BeforeEach(func() {
		detector = patterns.NewDefaultDetector()
	})

	detectedNames := func(candidate string) []string {
		return patterns.Names(detector.Detect(candidate))
	}

	It("finds nothing in a candidate without patterns", func() {
		Expect(detector.Detect("K7v$Tq2!Lm9#Zp4@Wx1&")).To(BeEmpty())
	})

	It("finds nothing in the empty string", func() {
		Expect(detector.Detect("")).To(BeEmpty())
	})

	It("detects repeated characters", func() {
		Expect(detectedNames("aaa111")).To(Equal([]string{patterns.RepeatedCharacters}))
	})

	It("detects keyboard patterns regardless of case", func() {
		Expect(detectedNames("QwErTyUiOp123")).To(ContainElement(patterns.KeyboardPattern))
	})

	It("detects qwertyuiop123 as both a keyboard pattern and a number sequence", func() {
		Expect(detectedNames("qwertyuiop123")).To(Equal([]string{patterns.KeyboardPattern}))
		Expect(detectedNames("qwertyuiop1234")).To(Equal([]string{
			patterns.SequentialNumbers,
			patterns.KeyboardPattern,
		}))
	})

	It("detects descending sequences", func() {
		Expect(detectedNames("x9876x")).To(Equal([]string{patterns.SequentialNumbers}))
		Expect(detectedNames("xDCBAx")).To(Equal([]string{patterns.SequentialLetters}))
	})

	It("reports each rule at most once, in rule order", func() {
		names := detectedNames("zzz-asdf-1234-qwerty-abcd-5678")
		Expect(names).To(Equal([]string{
			patterns.SequentialNumbers,
			patterns.SequentialLetters,
			patterns.KeyboardPattern,
			patterns.RepeatedCharacters,
		}))
	})

	It("looks for repeated characters in the candidate as given", func() {
		Expect(detectedNames("aAa")).To(BeEmpty())
	})

	It("reports the rule of each match", func() {
		findings := detector.Detect("xxABCDxx")
		Expect(findings).To(Equal([]patterns.Finding{
			{Rule: patterns.SequentialLetters},
		}))
	})

	Context("with custom rules", func() {
		It("collapses rules sharing a name to the first hit", func() {
			detector = patterns.NewDetector(
				patterns.Rule{Name: "word", Matcher: matchers.Substring("foo")},
				patterns.Rule{Name: "word", Matcher: matchers.Substring("bar")},
			)

			findings := detector.Detect("bar foo")
			Expect(findings).To(Equal([]patterns.Finding{
				{Rule: "word"},
			}))
		})
	})
})
