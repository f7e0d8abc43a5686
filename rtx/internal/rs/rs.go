// Package rs implements a blind (error-location-unknown) Reed-Solomon
// decoder over GF(256), configured for the RS(255,223) code used to
// protect each downlink frame.
//
// The Galois-field table construction follows the classic Phil Karn
// construction (log/antilog tables, generator polynomial built from its
// roots) used throughout amateur-radio FEC code. The error-correction
// half (syndromes, Berlekamp-Massey, Chien search, Forney) is the
// standard complement to that construction; no erasure positions are
// used here since the decoder never knows in advance which frame bytes
// were corrupted.
package rs

// A0 marks "log of zero" in index form: no field element maps to it.
const a0 = 255 // nn for symsize=8

// Codec is a configured Reed-Solomon(nn, nn-nroots) codec over GF(2^mm).
type Codec struct {
	mm     int
	nn     int
	fcr    int
	prim   int
	iprim  int
	nroots int

	alphaTo []int // index -> field element
	indexOf []int // field element -> index (log)
	genpoly []int // generator polynomial, index form
}

// New builds a Codec for an (nn, nn-nroots) RS code over GF(2^symsize),
// with generator field polynomial gfpoly, first consecutive root fcr and
// primitive element prim. Returns nil if the parameters don't describe a
// valid code, mirroring the original C construction's validation.
func New(symsize, gfpoly, fcr, prim, nroots int) *Codec {
	if symsize < 1 || symsize > 8 {
		return nil
	}
	if fcr < 0 || fcr >= (1<<symsize) {
		return nil
	}
	if prim <= 0 || prim >= (1<<symsize) {
		return nil
	}
	if nroots < 0 || nroots >= (1<<symsize) {
		return nil
	}

	c := &Codec{
		mm:     symsize,
		nn:     (1 << symsize) - 1,
		fcr:    fcr,
		prim:   prim,
		nroots: nroots,
	}

	c.alphaTo = make([]int, c.nn+1)
	c.indexOf = make([]int, c.nn+1)

	c.indexOf[0] = c.nn
	c.alphaTo[c.nn] = 0
	sr := 1
	for i := 0; i < c.nn; i++ {
		c.indexOf[sr] = i
		c.alphaTo[i] = sr
		sr <<= 1
		if sr&(1<<symsize) != 0 {
			sr ^= gfpoly
		}
		sr &= c.nn
	}
	if sr != 1 {
		return nil // gfpoly is not a primitive polynomial
	}

	iprim := 1
	for (iprim % prim) != 0 {
		iprim += c.nn
	}
	c.iprim = iprim / prim

	c.genpoly = make([]int, nroots+1)
	c.genpoly[0] = 1
	root := fcr * prim
	for i := 0; i < nroots; i, root = i+1, root+prim {
		c.genpoly[i+1] = 1
		for j := i; j > 0; j-- {
			if c.genpoly[j] != 0 {
				c.genpoly[j] = c.genpoly[j-1] ^ c.alphaTo[c.modnn(c.indexOf[c.genpoly[j]]+root)]
			} else {
				c.genpoly[j] = c.genpoly[j-1]
			}
		}
		c.genpoly[0] = c.alphaTo[c.modnn(c.indexOf[c.genpoly[0]]+root)]
	}
	for i := range c.genpoly {
		c.genpoly[i] = c.indexOf[c.genpoly[i]]
	}
	return c
}

func (c *Codec) modnn(x int) int {
	for x >= c.nn {
		x -= c.nn
		x = (x >> c.mm) + (x & c.nn)
	}
	return x
}

// NRoots reports the number of parity symbols this codec appends.
func (c *Codec) NRoots() int { return c.nroots }

// N reports the codeword length (data symbols + parity symbols).
func (c *Codec) N() int { return c.nn }

// Encode computes the nroots parity symbols for the given data symbols
// (len(data) == nn-nroots) and returns them, most-significant first. It
// exists only to let tests build compatible RS-protected test vectors;
// the decoder it supports never needs an encode path of its own.
func (c *Codec) Encode(data []byte) []byte {
	parity := make([]byte, c.nroots)
	for i := 0; i < len(data); i++ {
		feedback := c.indexOf[int(data[i])^int(parity[0])]
		if feedback != c.nn {
			for j := 1; j < c.nroots; j++ {
				parity[j] ^= byte(c.alphaTo[c.modnn(feedback+c.genpoly[c.nroots-j])])
			}
		}
		copy(parity, parity[1:])
		if feedback != c.nn {
			parity[c.nroots-1] = byte(c.alphaTo[c.modnn(feedback+c.genpoly[0])])
		} else {
			parity[c.nroots-1] = 0
		}
	}
	return parity
}

// Decode corrects up to nroots/2 symbol errors in place within block
// (len(block) must equal c.N()) using syndrome computation,
// Berlekamp-Massey, Chien search and Forney's algorithm. It returns the
// number of corrected symbols, or -1 if the block contains more errors
// than the code can locate.
func (c *Codec) Decode(block []byte) int {
	nn, nroots := c.nn, c.nroots
	alphaTo, indexOf := c.alphaTo, c.indexOf

	s := make([]int, nroots)
	for i := range s {
		s[i] = int(block[0])
	}
	for j := 1; j < nn; j++ {
		for i := 0; i < nroots; i++ {
			if s[i] == 0 {
				s[i] = int(block[j])
			} else {
				s[i] = int(block[j]) ^ alphaTo[c.modnn(indexOf[s[i]]+(c.fcr+i)*c.prim)]
			}
		}
	}

	synError := 0
	for i := 0; i < nroots; i++ {
		synError |= s[i]
		s[i] = indexOf[s[i]]
	}
	if synError == 0 {
		return 0
	}

	lambda := make([]int, nroots+1)
	lambda[0] = 1
	b := make([]int, nroots+1)
	for i := range lambda {
		b[i] = indexOf[lambda[i]]
	}
	t := make([]int, nroots+1)

	el := 0
	r := 0
	for r < nroots {
		r++
		discrR := 0
		for i := 0; i < r; i++ {
			if lambda[i] != 0 && s[r-i-1] != nn {
				discrR ^= alphaTo[c.modnn(indexOf[lambda[i]]+s[r-i-1])]
			}
		}
		discrR = indexOf[discrR]
		if discrR == nn {
			copy(b[1:], b[:nroots])
			b[0] = nn
		} else {
			t[0] = lambda[0]
			for i := 0; i < nroots; i++ {
				if b[i] != nn {
					t[i+1] = lambda[i+1] ^ alphaTo[c.modnn(discrR+b[i])]
				} else {
					t[i+1] = lambda[i+1]
				}
			}
			if 2*el <= r-1 {
				el = r - el
				for i := 0; i <= nroots; i++ {
					if lambda[i] == 0 {
						b[i] = nn
					} else {
						b[i] = c.modnn(indexOf[lambda[i]] - discrR + nn)
					}
				}
			} else {
				copy(b[1:], b[:nroots])
				b[0] = nn
			}
			copy(lambda, t)
		}
	}

	degLambda := 0
	for i := range lambda {
		lambda[i] = indexOf[lambda[i]]
		if lambda[i] != nn {
			degLambda = i
		}
	}

	reg := make([]int, nroots+1)
	copy(reg[1:], lambda[1:])
	root := make([]int, nroots)
	loc := make([]int, nroots)
	count := 0
	k := c.iprim - 1
	for i := 1; i <= nn; i, k = i+1, c.modnn(k+c.iprim) {
		q := 1
		for j := degLambda; j > 0; j-- {
			if reg[j] != nn {
				reg[j] = c.modnn(reg[j] + j)
				q ^= alphaTo[reg[j]]
			}
		}
		if q != 0 {
			continue
		}
		root[count] = i
		loc[count] = k
		count++
		if count == degLambda {
			break
		}
	}
	if degLambda != count {
		return -1 // uncorrectable: more errors than roots
	}

	degOmega := degLambda - 1
	omega := make([]int, nroots+1)
	for i := 0; i <= degOmega; i++ {
		tmp := 0
		for j := i; j >= 0; j-- {
			if s[i-j] != nn && lambda[j] != nn {
				tmp ^= alphaTo[c.modnn(s[i-j]+lambda[j])]
			}
		}
		omega[i] = indexOf[tmp]
	}

	for j := count - 1; j >= 0; j-- {
		num1 := 0
		for i := degOmega; i >= 0; i-- {
			if omega[i] != nn {
				num1 ^= alphaTo[c.modnn(omega[i]+i*root[j])]
			}
		}
		num2 := alphaTo[c.modnn(root[j]*(c.fcr-1)+nn)]
		den := 0
		limit := degLambda
		if nroots-1 < limit {
			limit = nroots - 1
		}
		limit &^= 1
		for i := limit; i >= 0; i -= 2 {
			if lambda[i+1] != nn {
				den ^= alphaTo[c.modnn(lambda[i+1]+i*root[j])]
			}
		}
		if den == 0 {
			return -1
		}
		if num1 != 0 {
			block[loc[j]] ^= byte(alphaTo[c.modnn(indexOf[num1]+indexOf[num2]+nn-indexOf[den])])
		}
	}
	return count
}
