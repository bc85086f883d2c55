package protocol

// Frame structure constants.
const (
	// MaxFrameSize is the largest frame the bridge accepts, length prefix included.
	MaxFrameSize = 63

	// RequestHeaderSize covers the length prefix, mailbox, command and sequence bytes.
	RequestHeaderSize = 4

	// ResponseHeaderSize covers the length prefix, sequence and status bytes.
	ResponseHeaderSize = 3

	// ChecksumSize is the size of the trailing checksum in bytes
	ChecksumSize = 2

	// MaxWriteLen is the largest request payload: 63 - 4 header - 2 checksum.
	MaxWriteLen = MaxFrameSize - RequestHeaderSize - ChecksumSize

	// MaxReadLen is the largest response payload: 63 - 3 header - 2 checksum.
	MaxReadLen = MaxFrameSize - ResponseHeaderSize - ChecksumSize

	// FirmwareChunkSize is the payload carried by one firmware download frame.
	FirmwareChunkSize = MaxWriteLen
)

// Bulk endpoints of the control pipe.
const (
	// EndpointOut carries request frames to the bridge
	EndpointOut = 0x02

	// EndpointIn carries response frames from the bridge
	EndpointIn = 0x81
)

// Mailboxes select independent register spaces.
const (
	// MailboxLink addresses the bridge/link domain
	MailboxLink = 0x00

	// MailboxOFDM addresses the demodulator/OFDM domain
	MailboxOFDM = 0x80

	// SecondaryOffset is added to a mailbox to reach the second chip
	// of a dual-demodulator device.
	SecondaryOffset = 0x10
)

// Command codes understood by the bridge firmware.
const (
	CmdRegDemodRead    = 0x00
	CmdRegDemodWrite   = 0x01
	CmdRegTunerRead    = 0x02
	CmdRegTunerWrite   = 0x03
	CmdRegEEPROMRead   = 0x04
	CmdRegEEPROMWrite  = 0x05
	CmdDataRead        = 0x06
	CmdVarRead         = 0x08
	CmdVarWrite        = 0x09
	CmdPlatformGet     = 0x0A
	CmdPlatformSet     = 0x0B
	CmdIPCache         = 0x0D
	CmdIPAdd           = 0x0E
	CmdIPRemove        = 0x0F
	CmdPIDAdd          = 0x10
	CmdPIDRemove       = 0x11
	CmdSIPSIGet        = 0x12
	CmdSIPSIMPEReset   = 0x13
	CmdHPIDAdd         = 0x15
	CmdHPIDRemove      = 0x16
	CmdAbort           = 0x17
	CmdIRGet           = 0x18
	CmdIRSet           = 0x19
	CmdFwDownload      = 0x21
	CmdQueryInfo       = 0x22
	CmdBoot            = 0x23
	CmdFwDownloadBegin = 0x24
	CmdFwDownloadEnd   = 0x25
	CmdRunCode         = 0x26
	CmdScatterRead     = 0x28
	CmdScatterWrite    = 0x29
	CmdGenericRead     = 0x2A
	CmdGenericWrite    = 0x2B
)

// CmdReboot shares its code with CmdBoot.
const CmdReboot = CmdBoot

// Register access header constants.
const (
	// RegisterHeaderSize is the size of the register read/write header:
	// [LEN][WIDTH=2][0][0][ADDR_H][ADDR_L]
	RegisterHeaderSize = 6

	// RegisterAddrWidth tags a 16-bit register address
	RegisterAddrWidth = 2

	// TunerHeaderSize is the size of the tuner proxy header:
	// [LEN][I2C_ADDR][WIDTH=1][0]
	TunerHeaderSize = 4

	// TunerRegWidth tags an 8-bit tuner register pointer
	TunerRegWidth = 1

	// MaxRegisterWrite is the most register bytes one write frame can carry.
	MaxRegisterWrite = MaxWriteLen - RegisterHeaderSize
)

// StatusSuccess is the only status byte that means the command succeeded.
const StatusSuccess = 0x00

// QueryInfoReplySize is the length of a query-info reply.
const QueryInfoReplySize = 4
