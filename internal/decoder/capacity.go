package decoder

// byteCapacity is the standard byte-mode data capacity (maximum content
// bytes) of a QR symbol at each version (1-40, index 0 unused) for each of
// the four error-correction levels, matching the well-published ISO/IEC
// 18004 capacity table (the same data nayuki-QR-Code-generator's version/
// qrcodeecc packages are built on, for the inverse direction: encoding
// picks a version from a byte count; here we reconstruct a version from a
// byte count, since the ZXing-lineage backend's public Result does not
// surface the QR version it decoded).
var byteCapacity = [41][4]int{
	// index: [L, M, Q, H]
	1:  {17, 14, 11, 7},
	2:  {32, 26, 20, 14},
	3:  {53, 42, 32, 24},
	4:  {78, 62, 46, 34},
	5:  {106, 84, 60, 44},
	6:  {134, 106, 74, 58},
	7:  {154, 122, 86, 64},
	8:  {192, 152, 108, 84},
	9:  {230, 180, 130, 98},
	10: {271, 213, 151, 119},
	11: {321, 251, 177, 137},
	12: {367, 287, 203, 155},
	13: {425, 331, 241, 177},
	14: {458, 362, 258, 194},
	15: {520, 412, 292, 220},
	16: {586, 450, 322, 250},
	17: {644, 504, 364, 280},
	18: {718, 560, 394, 310},
	19: {792, 624, 442, 338},
	20: {858, 666, 482, 382},
	21: {929, 711, 509, 403},
	22: {1003, 779, 565, 439},
	23: {1091, 857, 611, 461},
	24: {1171, 911, 661, 511},
	25: {1273, 997, 715, 535},
	26: {1367, 1059, 751, 593},
	27: {1465, 1125, 805, 625},
	28: {1528, 1190, 868, 658},
	29: {1628, 1264, 908, 698},
	30: {1732, 1370, 982, 742},
	31: {1840, 1452, 1030, 790},
	32: {1952, 1538, 1112, 842},
	33: {2068, 1628, 1168, 898},
	34: {2188, 1722, 1228, 958},
	35: {2303, 1809, 1283, 983},
	36: {2431, 1911, 1351, 1051},
	37: {2563, 1989, 1423, 1093},
	38: {2699, 2099, 1499, 1139},
	39: {2809, 2213, 1579, 1219},
	40: {2953, 2331, 1663, 1273},
}

func eccIndex(e EccLevel) int {
	switch e {
	case EccL:
		return 0
	case EccM:
		return 1
	case EccQ:
		return 2
	case EccH:
		return 3
	default:
		return 1
	}
}

// minVersionForBytes returns the smallest QR version whose byte-mode
// capacity at the given ECC level holds n bytes of content. Returns 40 if
// n exceeds even the largest symbol's capacity (should not happen for any
// content a real decoder produced, but keeps the function total).
func minVersionForBytes(n int, ecc EccLevel) int {
	idx := eccIndex(ecc)
	for v := 1; v <= 40; v++ {
		if byteCapacity[v][idx] >= n {
			return v
		}
	}
	return 40
}
