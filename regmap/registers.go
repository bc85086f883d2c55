package regmap

import (
	"github.com/moffa90/go-af9035/protocol"
	"github.com/moffa90/go-af9035/regbus"
)

func link(addr uint16) regbus.Register {
	return regbus.Register{Mailbox: protocol.MailboxLink, Addr: addr}
}

func ofdm(addr uint16) regbus.Register {
	return regbus.Register{Mailbox: protocol.MailboxOFDM, Addr: addr}
}

// Single-bit fields.
var (
	Bit0 = regbus.BitField{Pos: 0, Len: 1}
	Bit1 = regbus.BitField{Pos: 1, Len: 1}
	Bit2 = regbus.BitField{Pos: 2, Len: 1}
	Bit3 = regbus.BitField{Pos: 3, Len: 1}
	Bit5 = regbus.BitField{Pos: 5, Len: 1}
	Bit6 = regbus.BitField{Pos: 6, Len: 1}
)

// Bridge (link domain) registers.
var (
	// ClockStrap holds the crystal/ADC selection straps in its low nibble.
	ClockStrap      = link(0xd800)
	ClockStrapField = regbus.BitField{Pos: 0, Len: 4}

	// SecondDemodAddr tells the bridge the I2C address of the second demodulator.
	SecondDemodAddr = link(0x417f)

	// ClockOutEnable feeds the crystal clock to the second demodulator.
	ClockOutEnable = link(0xd81a)

	LinkFirmwareVersion = link(0x83e9)
)

// GPIO registers used for tuner board bring-up.
var (
	GPIOT2En = link(0xd8ec)
	GPIOT2On = link(0xd8ed)
	GPIOT2O  = link(0xd8eb)
	GPIOT3En = link(0xd8e8)
	GPIOT3On = link(0xd8e9)
	GPIOT3O  = link(0xd8e7)

	GPIOH12En = link(0xd8e0)
	GPIOH12On = link(0xd8e1)
	GPIOH12O  = link(0xd8df)
	GPIOH4En  = link(0xd8c0)
	GPIOH4On  = link(0xd8c1)
	GPIOH4O   = link(0xd8bf)
	GPIOH3En  = link(0xd8b4)
	GPIOH3On  = link(0xd8b5)
	GPIOH3O   = link(0xd8b3)
)

// USB endpoint and TS interface registers.
var (
	MP2SoftReset    = ofdm(0xf99d)
	MP2IF2SoftReset = ofdm(0xf9a4)
	EP4TxEnable     = link(0xdd11) // bit 5
	EP5TxEnable     = link(0xdd11) // bit 6
	EP4TxNak        = link(0xdd13) // bit 5
	EP5TxNak        = link(0xdd13) // bit 6
	EP4TxLen        = link(0xdd88) // 2 bytes, little endian
	EP5TxLen        = link(0xdd8a) // 2 bytes, little endian
	EP4MaxPacket    = link(0xdd0c)
	EP5MaxPacket    = link(0xdd0d)
	MP2IF2Enable    = ofdm(0xf9a3)
	TSISEnable      = ofdm(0xf9cd)
)

// Demodulator core registers.
var (
	SuspendFlag         = ofdm(0x004c)
	TriggerOFSM         = ofdm(0x0000)
	AFEMem0             = ofdm(0xfb24) // bit 3 powers the ADC down
	TunerID             = link(0xf641)
	FeqReadUpdate       = ofdm(0xf5ca)
	FecVtbRsdMonEn      = ofdm(0xf715)
	CrystalClock        = ofdm(0x0025) // 4 bytes
	ADCClock            = ofdm(0xf1cd) // 3 bytes
	DVBTInterrupt       = link(0xf41f) // bit 2
	DVBTEnable          = link(0xf41a) // bit 0
	OFDMFirmwareVersion = ofdm(0x4191)
)

// DCA (dual chip) registers.
var (
	DCAUpper      = ofdm(0xf731)
	HostBDCAUpper = link(0xd91e)
	HostADCAUpper = link(0xd919)
	DCALower      = ofdm(0xf732)
	HostBDCALower = link(0xd91f)
	HostADCALower = link(0xd91a)
	DCAPlatch     = ofdm(0xf730)
	DCAFPGALatch  = ofdm(0xf778)
	DCAStandAlone = ofdm(0xf73c)
	DCAEnable     = ofdm(0xf776)
)

// Pad drive and TS output mode registers.
var (
	Lock3Out          = link(0xd8fd)
	PadMiscDR2        = link(0xd830)
	PadMiscDR4        = link(0xd831)
	PadMiscDR8        = link(0xd832)
	MP2IFSerialMode   = ofdm(0xf985)
	MP2IFParallelMode = ofdm(0xf986)
	HostBSerialMode   = link(0xd91c)
	HostASerialMode   = link(0xd917)
	HostAParallelMode = link(0xd916)
	MP2IFHalfPSB      = ofdm(0xf9a5)
	MP2IFStopEnable   = ofdm(0xf9b5)
	MP2IFFullSpeed    = ofdm(0xf990)
	PadODPU           = link(0xd827) // bit 0 drives tuner I2C open drain, bit 1 AGC
	AGCOpenDrain      = link(0xd829)
)

// Channel tuning registers.
var (
	// Coefficients is the first of 36 consecutive CFOE coefficient registers.
	Coefficients   = ofdm(0x0001)
	BFSFCW         = ofdm(0x0029) // 3 bytes
	ADCx2          = ofdm(0x0045)
	Bandwidth      = ofdm(0xf904)
	BandwidthField = regbus.BitField{Pos: 0, Len: 2}
	TrainingMode   = ofdm(0x0040)
	EmptyChannel   = ofdm(0x0047)
	MP2IFSyncLock  = ofdm(0xf999) // bit 0
	FrequencyBand  = ofdm(0x004b)

	// I2CGate is the host-to-tuner bypass bit.
	I2CGate = link(0xfa04) // bit 0
)
