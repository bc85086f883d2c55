package tuning

// coefficientTable holds the CFOE coefficient sets per ADC clock and
// bandwidth. The 5 MHz sets are kept but disabled.
var coefficientTable = []CoefficientSet{
	{
		ADCClock:  20156250,
		Bandwidth: Bandwidth5MHz,
		disabled:  true,
		Coeff1:    [5]uint32{0x02449b5c, 0x01224dae, 0x00912b60, 0x009126d7, 0x0091224e},
		Coeff2:    [3]uint32{0x01224dae, 0x009126d7, 0x0048936b},
		BFSRatio:  0x0387,
		FFTRatio:  0x0122,
	},
	{
		ADCClock:  20156250,
		Bandwidth: Bandwidth6MHz,
		Coeff1:    [5]uint32{0x02b8ba6e, 0x015c5d37, 0x00ae340d, 0x00ae2e9b, 0x00ae292a},
		Coeff2:    [3]uint32{0x015c5d37, 0x00ae2e9b, 0x0057174e},
		BFSRatio:  0x02f1,
		FFTRatio:  0x015c,
	},
	{
		ADCClock:  20156250,
		Bandwidth: Bandwidth7MHz,
		Coeff1:    [5]uint32{0x032cd980, 0x01966cc0, 0x00cb3cba, 0x00cb3660, 0x00cb3007},
		Coeff2:    [3]uint32{0x01966cc0, 0x00cb3660, 0x00659b30},
		BFSRatio:  0x0285,
		FFTRatio:  0x0196,
	},
	{
		ADCClock:  20156250,
		Bandwidth: Bandwidth8MHz,
		Coeff1:    [5]uint32{0x03a0f893, 0x01d07c49, 0x00e84567, 0x00e83e25, 0x00e836e3},
		Coeff2:    [3]uint32{0x01d07c49, 0x00e83e25, 0x00741f12},
		BFSRatio:  0x0234,
		FFTRatio:  0x01d0,
	},
	{
		ADCClock:  20187500,
		Bandwidth: Bandwidth5MHz,
		disabled:  true,
		Coeff1:    [5]uint32{0x0243b546, 0x0121daa3, 0x0090f1d9, 0x0090ed51, 0x0090e8ca},
		Coeff2:    [3]uint32{0x0121daa3, 0x0090ed51, 0x004876a9},
		BFSRatio:  0x0388,
		FFTRatio:  0x0122,
	},
	{
		ADCClock:  20187500,
		Bandwidth: Bandwidth6MHz,
		Coeff1:    [5]uint32{0x02b7a654, 0x015bd32a, 0x00adef04, 0x00ade995, 0x00ade426},
		Coeff2:    [3]uint32{0x015bd32a, 0x00ade995, 0x0056f4ca},
		BFSRatio:  0x02f2,
		FFTRatio:  0x015c,
	},
	{
		ADCClock:  20187500,
		Bandwidth: Bandwidth7MHz,
		Coeff1:    [5]uint32{0x032b9761, 0x0195cbb1, 0x00caec30, 0x00cae5d8, 0x00cadf81},
		Coeff2:    [3]uint32{0x0195cbb1, 0x00cae5d8, 0x006572ec},
		BFSRatio:  0x0286,
		FFTRatio:  0x0196,
	},
	{
		ADCClock:  20187500,
		Bandwidth: Bandwidth8MHz,
		Coeff1:    [5]uint32{0x039f886f, 0x01cfc438, 0x00e7e95b, 0x00e7e21c, 0x00e7dadd},
		Coeff2:    [3]uint32{0x01cfc438, 0x00e7e21c, 0x0073f10e},
		BFSRatio:  0x0235,
		FFTRatio:  0x01d0,
	},
	{
		ADCClock:  20250000,
		Bandwidth: Bandwidth5MHz,
		disabled:  true,
		Coeff1:    [5]uint32{0x0241eb3b, 0x0120f59e, 0x00907f53, 0x00907acf, 0x0090764b},
		Coeff2:    [3]uint32{0x0120f59e, 0x00907acf, 0x00483d67},
		BFSRatio:  0x038b,
		FFTRatio:  0x0121,
	},
	{
		ADCClock:  20250000,
		Bandwidth: Bandwidth6MHz,
		Coeff1:    [5]uint32{0x02b580ad, 0x015ac057, 0x00ad6597, 0x00ad602b, 0x00ad5ac1},
		Coeff2:    [3]uint32{0x015ac057, 0x00ad602b, 0x0056b016},
		BFSRatio:  0x02f4,
		FFTRatio:  0x015b,
	},
	{
		ADCClock:  20250000,
		Bandwidth: Bandwidth7MHz,
		Coeff1:    [5]uint32{0x03291620, 0x01948b10, 0x00ca4bda, 0x00ca4588, 0x00ca3f36},
		Coeff2:    [3]uint32{0x01948b10, 0x00ca4588, 0x006522c4},
		BFSRatio:  0x0288,
		FFTRatio:  0x0195,
	},
	{
		ADCClock:  20250000,
		Bandwidth: Bandwidth8MHz,
		Coeff1:    [5]uint32{0x039cab92, 0x01ce55c9, 0x00e7321e, 0x00e72ae4, 0x00e723ab},
		Coeff2:    [3]uint32{0x01ce55c9, 0x00e72ae4, 0x00739572},
		BFSRatio:  0x0237,
		FFTRatio:  0x01ce,
	},
	{
		ADCClock:  20583333,
		Bandwidth: Bandwidth5MHz,
		disabled:  true,
		Coeff1:    [5]uint32{0x02388f54, 0x011c47aa, 0x008e2846, 0x008e23d5, 0x008e1f64},
		Coeff2:    [3]uint32{0x011c47aa, 0x008e23d5, 0x004711ea},
		BFSRatio:  0x039a,
		FFTRatio:  0x011c,
	},
	{
		ADCClock:  20583333,
		Bandwidth: Bandwidth6MHz,
		Coeff1:    [5]uint32{0x02aa4598, 0x015522cc, 0x00aa96bb, 0x00aa9166, 0x00aa8c12},
		Coeff2:    [3]uint32{0x015522cc, 0x00aa9166, 0x005548b3},
		BFSRatio:  0x0300,
		FFTRatio:  0x0155,
	},
	{
		ADCClock:  20583333,
		Bandwidth: Bandwidth7MHz,
		Coeff1:    [5]uint32{0x031bfbdc, 0x018dfdee, 0x00c7052f, 0x00c6fef7, 0x00c6f8bf},
		Coeff2:    [3]uint32{0x018dfdee, 0x00c6fef7, 0x00637f7b},
		BFSRatio:  0x0293,
		FFTRatio:  0x018e,
	},
	{
		ADCClock:  20583333,
		Bandwidth: Bandwidth8MHz,
		Coeff1:    [5]uint32{0x038db21f, 0x01c6d910, 0x00e373a3, 0x00e36c88, 0x00e3656d},
		Coeff2:    [3]uint32{0x01c6d910, 0x00e36c88, 0x0071b644},
		BFSRatio:  0x0240,
		FFTRatio:  0x01c7,
	},
	{
		ADCClock:  20416667,
		Bandwidth: Bandwidth5MHz,
		disabled:  true,
		Coeff1:    [5]uint32{0x023d337f, 0x011e99c0, 0x008f515a, 0x008f4ce0, 0x008f4865},
		Coeff2:    [3]uint32{0x011e99c0, 0x008f4ce0, 0x0047a670},
		BFSRatio:  0x0393,
		FFTRatio:  0x011f,
	},
	{
		ADCClock:  20416667,
		Bandwidth: Bandwidth6MHz,
		Coeff1:    [5]uint32{0x02afd765, 0x0157ebb3, 0x00abfb39, 0x00abf5d9, 0x00abf07a},
		Coeff2:    [3]uint32{0x0157ebb3, 0x00abf5d9, 0x0055faed},
		BFSRatio:  0x02fa,
		FFTRatio:  0x0158,
	},
	{
		ADCClock:  20416667,
		Bandwidth: Bandwidth7MHz,
		Coeff1:    [5]uint32{0x03227b4b, 0x01913da6, 0x00c8a518, 0x00c89ed3, 0x00c8988e},
		Coeff2:    [3]uint32{0x01913da6, 0x00c89ed3, 0x00644f69},
		BFSRatio:  0x028d,
		FFTRatio:  0x0191,
	},
	{
		ADCClock:  20416667,
		Bandwidth: Bandwidth8MHz,
		Coeff1:    [5]uint32{0x03951f32, 0x01ca8f99, 0x00e54ef7, 0x00e547cc, 0x00e540a2},
		Coeff2:    [3]uint32{0x01ca8f99, 0x00e547cc, 0x0072a3e6},
		BFSRatio:  0x023c,
		FFTRatio:  0x01cb,
	},
	{
		ADCClock:  20480000,
		Bandwidth: Bandwidth5MHz,
		disabled:  true,
		Coeff1:    [5]uint32{0x023b6db7, 0x011db6db, 0x008edfe5, 0x008edb6e, 0x008ed6f7},
		Coeff2:    [3]uint32{0x011db6db, 0x008edb6e, 0x00476db7},
		BFSRatio:  0x0396,
		FFTRatio:  0x011e,
	},
	{
		ADCClock:  20480000,
		Bandwidth: Bandwidth6MHz,
		Coeff1:    [5]uint32{0x02adb6db, 0x0156db6e, 0x00ab7312, 0x00ab6db7, 0x00ab685c},
		Coeff2:    [3]uint32{0x0156db6e, 0x00ab6db7, 0x0055b6db},
		BFSRatio:  0x02fd,
		FFTRatio:  0x0157,
	},
	{
		ADCClock:  20480000,
		Bandwidth: Bandwidth7MHz,
		Coeff1:    [5]uint32{0x03200000, 0x01900000, 0x00c80640, 0x00c80000, 0x00c7f9c0},
		Coeff2:    [3]uint32{0x01900000, 0x00c80000, 0x00640000},
		BFSRatio:  0x028f,
		FFTRatio:  0x0190,
	},
	{
		ADCClock:  20480000,
		Bandwidth: Bandwidth8MHz,
		Coeff1:    [5]uint32{0x03924925, 0x01c92492, 0x00e4996e, 0x00e49249, 0x00e48b25},
		Coeff2:    [3]uint32{0x01c92492, 0x00e49249, 0x00724925},
		BFSRatio:  0x023d,
		FFTRatio:  0x01c9,
	},
	{
		ADCClock:  20500000,
		Bandwidth: Bandwidth5MHz,
		disabled:  true,
		Coeff1:    [5]uint32{0x023adeff, 0x011d6f80, 0x008ebc36, 0x008eb7c0, 0x008eb34a},
		Coeff2:    [3]uint32{0x011d6f80, 0x008eb7c0, 0x00475be0},
		BFSRatio:  0x0396,
		FFTRatio:  0x011d,
	},
	{
		ADCClock:  20500000,
		Bandwidth: Bandwidth6MHz,
		Coeff1:    [5]uint32{0x02ad0b99, 0x015685cc, 0x00ab4840, 0x00ab42e6, 0x00ab3d8c},
		Coeff2:    [3]uint32{0x015685cc, 0x00ab42e6, 0x0055a173},
		BFSRatio:  0x02fd,
		FFTRatio:  0x0157,
	},
	{
		ADCClock:  20500000,
		Bandwidth: Bandwidth7MHz,
		Coeff1:    [5]uint32{0x031f3832, 0x018f9c19, 0x00c7d44b, 0x00c7ce0c, 0x00c7c7ce},
		Coeff2:    [3]uint32{0x018f9c19, 0x00c7ce0c, 0x0063e706},
		BFSRatio:  0x0290,
		FFTRatio:  0x0190,
	},
	{
		ADCClock:  20500000,
		Bandwidth: Bandwidth8MHz,
		Coeff1:    [5]uint32{0x039164cb, 0x01c8b266, 0x00e46056, 0x00e45933, 0x00e45210},
		Coeff2:    [3]uint32{0x01c8b266, 0x00e45933, 0x00722c99},
		BFSRatio:  0x023e,
		FFTRatio:  0x01c9,
	},
	{
		ADCClock:  20625000,
		Bandwidth: Bandwidth5MHz,
		disabled:  true,
		Coeff1:    [5]uint32{0x02376948, 0x011bb4a4, 0x008ddec1, 0x008dda52, 0x008dd5e3},
		Coeff2:    [3]uint32{0x011bb4a4, 0x008dda52, 0x0046ed29},
		BFSRatio:  0x039c,
		FFTRatio:  0x011c,
	},
	{
		ADCClock:  20625000,
		Bandwidth: Bandwidth6MHz,
		Coeff1:    [5]uint32{0x02a8e4bd, 0x0154725e, 0x00aa3e81, 0x00aa392f, 0x00aa33de},
		Coeff2:    [3]uint32{0x0154725e, 0x00aa392f, 0x00551c98},
		BFSRatio:  0x0302,
		FFTRatio:  0x0154,
	},
	{
		ADCClock:  20625000,
		Bandwidth: Bandwidth7MHz,
		Coeff1:    [5]uint32{0x031a6032, 0x018d3019, 0x00c69e41, 0x00c6980c, 0x00c691d8},
		Coeff2:    [3]uint32{0x018d3019, 0x00c6980c, 0x00634c06},
		BFSRatio:  0x0294,
		FFTRatio:  0x018d,
	},
	{
		ADCClock:  20625000,
		Bandwidth: Bandwidth8MHz,
		Coeff1:    [5]uint32{0x038bdba6, 0x01c5edd3, 0x00e2fe02, 0x00e2f6ea, 0x00e2efd2},
		Coeff2:    [3]uint32{0x01c5edd3, 0x00e2f6ea, 0x00717b75},
		BFSRatio:  0x0242,
		FFTRatio:  0x01c6,
	},
}
