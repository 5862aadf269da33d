// Package content implements the per-file content filter chain: the
// Aho-Corasick prefilter, the regex executor, the comment suppressor, and
// the statistical entropy validator.
package content

import (
	"strings"
)

var staticBigrams = buildBigramSet(
	"er,te,an,en,ma,ke,10,at,/m,on,09,ti,al,io,.h,./,..,ra,ht,es,or,tm,pe,ml,re,in,3/,n3,0F,ok,ey,00,80,08,ss,07,15,81,F3,st,52,KE,To,01,it,2B,2C,/E,P_,EY,B7,se,73,de,VP,EV,to,od,B0,0E,nt,et,_P,A0,60,90,0A,ri,30,ar,C0,op,03,ec,ns,as,FF,F7,po,PK,la,.p,AE,62,me,F4,71,8E,yp,pa,50,qu,D7,7D,rs,ea,Y_,t_,ha,3B,c/,D2,ls,DE,pr,am,E0,oc,06,li,do,id,05,51,40,ED,_p,70,ed,04,02,t.,rd,mp,20,d_,co,ro,ex,11,ua,nd,0C,0D,D0,Eq,le,EF,wo,e_,e.,ct,0B,_c,Li,45,rT,pt,14,61,Th,56,sT,E6,DF,nT,16,85,em,BF,9E,ne,_s,25,91,78,57,BE,ta,ng,cl,_t,E1,1F,y_,xp,cr,4F,si,s_,E5,pl,AB,ge,7E,F8,35,E2,s.,CF,58,32,2F,E7,1B,ve,B1,3D,nc,Gr,EB,C6,77,64,sl,8A,6A,_k,79,C8,88,ce,Ex,5C,28,EA,A6,2A,Ke,A7,th,CA,ry,F0,B6,7/,D9,6B,4D,DA,3C,ue,n7,9C,.c,7B,72,ac,98,22,/o,va,2D,n.,_m,B8,A3,8D,n_,12,nE,ca,3A,is,AD,rt,r_,l-,_C,n1,_v,y.,yw,1/,ov,_n,_d,ut,no,ul,sa,CT,_K,SS,_e,F1,ty,ou,nG,tr,s/,il,na,iv,L_,AA,da,Ty,EC,ur,TX,xt,lu,No,r.,SL,Re,sw,_1,om,e/,Pa,xc,_g,_a,X_,/e,vi,ds,ai,==,ts,ni,mg,ic,o/,mt,gm,pk,d.,ch,/p,tu,sp,17,/c,ym,ot,ki,Te,FE,ub,nL,eL,.k,if,he,34,e-,23,ze,rE,iz,St,EE,-p,be,In,ER,67,13,yn,ig,ib,_f,.o,el,55,Un,21,fi,54,mo,mb,gi,_r,Qu,FD,-o,ie,fo,As,7F,48,41,/i,eS,ab,FB,1E,h_,ef,rr,rc,di,b.,ol,im,eg,ap,_l,Se,19,oS,ew,bs,Su,F5,Co,BC,ud,C1,r-,ia,_o,65,.r,sk,o_,ck,CD,Am,9F,un,fa,F6,5F,nk,lo,ev,/f,.t,sE,nO,a_,EN,E4,Di,AC,95,74,1_,1A,us,ly,ll,_b,SA,FC,69,5E,43,um,tT,OS,CE,87,7A,59,44,t-,bl,ad,Or,D5,A_,31,24,t/,ph,mm,f.,ag,RS,Of,It,FA,De,1D,/d,-k,lf,hr,gu,fy,D6,89,6F,4E,/k,w_,cu,br,TE,ST,R_,E8,/O",
)

func buildBigramSet(csv string) map[string]struct{} {
	parts := strings.Split(csv, ",")
	set := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		set[p] = struct{}{}
	}
	return set
}

var base36Ranges = [][2]byte{{'0', '9'}, {'A', 'Z'}}
var base64Ranges = [][2]byte{{'0', '9'}, {'A', 'Z'}, {'a', 'z'}}

// EntropyValidator distinguishes random-looking candidate strings (likely
// secrets) from structured, non-random text using a binomial-tail
// randomness estimator over distinct-value count, character-class
// distribution, and (base64 alphabet only) bigram frequency.
type EntropyValidator struct {
	minThreshold float64
}

// NewEntropyValidator builds a validator with the given minimum probability
// threshold (e.g. 1e-5 — "1 in 100,000").
func NewEntropyValidator(minThreshold float64) *EntropyValidator {
	return &EntropyValidator{minThreshold: minThreshold}
}

// IsLikelySecret reports whether data's randomness probability clears the
// configured threshold. Strings containing no ASCII digit must clear ten
// times the threshold, since plain-word identifiers skew digit-free.
func (v *EntropyValidator) IsLikelySecret(data []byte) bool {
	probability := CalculateRandomnessProbability(data)
	if probability < v.minThreshold {
		return false
	}

	containsDigit := false
	for _, b := range data {
		if b >= '0' && b <= '9' {
			containsDigit = true
			break
		}
	}
	if !containsDigit && probability < v.minThreshold*10.0 {
		return false
	}
	return true
}

// CalculateRandomnessProbability is the direct (non-log-space) port of the
// reference binomial-tail estimator: infer an alphabet (hex, caps+digits,
// or full base64), then combine the distinct-value factor, the
// character-class factor, and — for the base64 alphabet only — the
// bigram-frequency factor. The hex/caps alphabets require at least 16
// bytes to be inferred at all, matching the reference regexes' `{16,}`
// minimum; shorter strings always fall through to base64.
func CalculateRandomnessProbability(s []byte) float64 {
	var base float64
	switch {
	case len(s) >= 16 && isAllInRanges(s, '0', '9', 'a', 'f', 'A', 'F'):
		base = 16.0
	case len(s) >= 16 && isAllInRanges(s, '0', '9', 'A', 'Z'):
		base = 36.0
	default:
		base = 64.0
	}

	probability := probabilityRandomDistinctValues(s, base) * probabilityRandomCharClass(s, base)
	if base == 64.0 {
		probability *= probabilityRandomBigrams(s)
	}
	return probability
}

// isAllInRanges reports whether every byte in s falls within one of the
// given [lo,hi] pairs (passed as flattened lo,hi,lo,hi,... bytes).
func isAllInRanges(s []byte, bounds ...byte) bool {
	for _, b := range s {
		inAny := false
		for i := 0; i+1 < len(bounds); i += 2 {
			if b >= bounds[i] && b <= bounds[i+1] {
				inAny = true
				break
			}
		}
		if !inAny {
			return false
		}
	}
	return true
}

func probabilityRandomBigrams(s []byte) float64 {
	numBigrams := 0
	for i := 0; i+1 < len(s); i++ {
		bigram := string(s[i : i+2])
		if _, ok := staticBigrams[bigram]; ok {
			numBigrams++
		}
	}
	return binomialProbability(len(s), numBigrams, float64(len(staticBigrams))/(64.0*64.0))
}

func probabilityRandomCharClass(s []byte, base float64) float64 {
	if base == 16.0 {
		return probabilityRandomCharClassAux(s, '0', '9', base)
	}

	ranges := base64Ranges
	if base == 36.0 {
		ranges = base36Ranges
	}

	minProbability := float64(1)
	first := true
	for _, r := range ranges {
		p := probabilityRandomCharClassAux(s, r[0], r[1], base)
		if first || p < minProbability {
			minProbability = p
			first = false
		}
	}
	return minProbability
}

func probabilityRandomCharClassAux(s []byte, min, max byte, base float64) float64 {
	count := 0
	for _, b := range s {
		if b >= min && b <= max {
			count++
		}
	}
	numChars := float64(int(max)-int(min)) + 1
	return binomialProbability(len(s), count, numChars/base)
}

// binomialProbability computes the binomial tail probability P(X >= x) or
// P(X <= x) (whichever tail x falls in) via direct factorial-ratio
// summation, matching the reference implementation's non-log-space
// arithmetic exactly rather than a log-gamma reformulation.
func binomialProbability(n, x int, p float64) float64 {
	leftTail := float64(x) < float64(n)*p
	min, max := x, n
	if leftTail {
		min, max = 0, x
	}

	total := 0.0
	for i := min; i <= max; i++ {
		total += factorial(n) / (factorial(n-i) * factorial(i)) * powInt(p, i) * powInt(1.0-p, n-i)
	}
	return total
}

func factorial(n int) float64 {
	result := 1.0
	for i := 2; i <= n; i++ {
		result *= float64(i)
	}
	return result
}

func powInt(base float64, exp int) float64 {
	result := 1.0
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}

func probabilityRandomDistinctValues(s []byte, base float64) float64 {
	totalPossible := powFloat(base, len(s))
	numDistinct := countDistinctValues(s)

	numMoreExtreme := 0.0
	for i := 1; i <= numDistinct; i++ {
		numMoreExtreme += numPossibleOutcomes(len(s), i, int(base))
	}
	return numMoreExtreme / totalPossible
}

func powFloat(base float64, exp int) float64 {
	result := 1.0
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}

func countDistinctValues(s []byte) int {
	seen := make(map[byte]struct{})
	for _, b := range s {
		seen[b] = struct{}{}
	}
	return len(seen)
}

func numPossibleOutcomes(numValues, numDistinctValues, base int) float64 {
	result := float64(base)
	for i := 1; i < numDistinctValues; i++ {
		result *= float64(base - i)
	}
	return result * numDistinctConfigurations(numValues, numDistinctValues)
}

func numDistinctConfigurations(numValues, numDistinctValues int) float64 {
	if numDistinctValues == 1 || numDistinctValues == numValues {
		return 1.0
	}
	return numDistinctConfigurationsAux(numDistinctValues, 0, numValues-numDistinctValues)
}

// numDistinctConfigurationsAux counts the ways to distribute
// remainingValues indistinguishable extra occurrences across numPositions
// distinct value-slots, recursing over "skip this slot" vs. "add one more
// occurrence here".
func numDistinctConfigurationsAux(numPositions, position, remainingValues int) float64 {
	if remainingValues == 0 {
		return 1.0
	}
	numConfigs := 0.0
	if position+1 < numPositions {
		numConfigs += numDistinctConfigurationsAux(numPositions, position+1, remainingValues)
	}
	numConfigs += float64(position+1) * numDistinctConfigurationsAux(numPositions, position, remainingValues-1)
	return numConfigs
}
