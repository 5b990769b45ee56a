package scpi

import (
	"strconv"
	"strings"

	"rfswitch-go/types"
)

var commandTable = []struct {
	pattern string
	fn      handler
}{
	// IEEE 488.2 common commands.
	{"*CLS", (*Interpreter).coreCls},
	{"*ESE", (*Interpreter).coreEse},
	{"*ESE?", (*Interpreter).coreEseQ},
	{"*ESR?", (*Interpreter).coreEsrQ},
	{"*IDN?", (*Interpreter).coreIdnQ},
	{"*OPC", (*Interpreter).coreOpc},
	{"*OPC?", (*Interpreter).coreOpcQ},
	{"*RST", (*Interpreter).coreRst},
	{"*SRE", (*Interpreter).coreSre},
	{"*SRE?", (*Interpreter).coreSreQ},
	{"*STB?", (*Interpreter).coreStbQ},
	{"*TST?", (*Interpreter).coreTstQ},
	{"*WAI", (*Interpreter).noParams},

	// Required SCPI commands.
	{"SYSTem:ERRor[:NEXT]?", (*Interpreter).systemErrorNextQ},
	{"SYSTem:ERRor:COUNt?", (*Interpreter).systemErrorCountQ},
	{"SYSTem:VERSion?", (*Interpreter).systemVersionQ},
	{"STATus:QUEStionable[:EVENt]?", (*Interpreter).statusQuesEventQ},
	{"STATus:QUEStionable:ENABle", (*Interpreter).statusQuesEnable},
	{"STATus:QUEStionable:ENABle?", (*Interpreter).statusQuesEnableQ},
	{"STATus:PRESet", (*Interpreter).statusPreset},

	// Switch.
	{"ROUTe:CONNect", (*Interpreter).routeConnect},
	{"ROUTe:CONNect?", (*Interpreter).routeConnectQ},
	{"ROUTe:DISConnect", (*Interpreter).routeDisconnect},
	{"ROUTe:OPEN[:ALL]", (*Interpreter).routeOpenAll},
	{"ROUTe:IDLE?", (*Interpreter).routeIdleQ},
	{"ROUTe:SWITch:STATe?", (*Interpreter).routeSwitchStateQ},
	{"ROUTe:ATTenuation?", (*Interpreter).routeAttenuationQ},
	{"ROUTe:ATTenuation:FREQuency:STARt?", (*Interpreter).attFrequencyStartQ},
	{"ROUTe:ATTenuation:FREQuency:STEP?", (*Interpreter).attFrequencyStepQ},
	{"ROUTe:ATTenuation:FREQuency:POINts?", (*Interpreter).attFrequencyPointsQ},
}

// ---- parameter access ----

func params(c command, lo, hi int) error {
	switch {
	case len(c.params) < lo:
		return Error{Code: ErrMissingParam}
	case len(c.params) > hi:
		return Error{Code: ErrParamNotAllowed}
	}
	return nil
}

func (it *Interpreter) noParams(c command) error { return params(c, 0, 0) }

func paramPath(raw string) (types.Path, error) {
	s, err := unquote(raw)
	if err != nil {
		return types.Path{}, err
	}
	return types.ParsePath(s)
}

func paramUint(raw string, max int64) (int64, error) {
	v, err := parseInt64(raw)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > max {
		return 0, Error{Code: ErrDataOutOfRange}
	}
	return v, nil
}

// ---- common commands ----

func (it *Interpreter) coreCls(c command) error {
	if err := params(c, 0, 0); err != nil {
		return err
	}
	it.errs.clear()
	it.esr = 0
	it.quesEv = 0
	return nil
}

func (it *Interpreter) coreEse(c command) error {
	if err := params(c, 1, 1); err != nil {
		return err
	}
	v, err := paramUint(c.params[0], 255)
	if err != nil {
		return err
	}
	it.ese = uint8(v)
	return nil
}

func (it *Interpreter) coreEseQ(c command) error {
	if err := params(c, 0, 0); err != nil {
		return err
	}
	it.replyInt(int64(it.ese))
	return nil
}

// *ESR? reads and clears the event status register.
func (it *Interpreter) coreEsrQ(c command) error {
	if err := params(c, 0, 0); err != nil {
		return err
	}
	it.replyInt(int64(it.esr))
	it.esr = 0
	return nil
}

func (it *Interpreter) coreIdnQ(c command) error {
	if err := params(c, 0, 0); err != nil {
		return err
	}
	id := it.cfg.Identity
	it.replyText(strings.Join([]string{id.Manufacturer, id.Model, id.Serial, id.Version}, ","))
	return nil
}

// Every command completes before the next is parsed, so *OPC is immediate.
func (it *Interpreter) coreOpc(c command) error {
	if err := params(c, 0, 0); err != nil {
		return err
	}
	it.esr |= esrOPC
	return nil
}

func (it *Interpreter) coreOpcQ(c command) error {
	if err := params(c, 0, 0); err != nil {
		return err
	}
	it.replyInt(1)
	return nil
}

func (it *Interpreter) coreRst(c command) error {
	if err := params(c, 0, 0); err != nil {
		return err
	}
	it.Reset()
	return nil
}

func (it *Interpreter) coreSre(c command) error {
	if err := params(c, 1, 1); err != nil {
		return err
	}
	v, err := paramUint(c.params[0], 255)
	if err != nil {
		return err
	}
	it.sre = uint8(v) &^ stbMSS
	return nil
}

func (it *Interpreter) coreSreQ(c command) error {
	if err := params(c, 0, 0); err != nil {
		return err
	}
	it.replyInt(int64(it.sre))
	return nil
}

func (it *Interpreter) coreStbQ(c command) error {
	if err := params(c, 0, 0); err != nil {
		return err
	}
	it.replyInt(int64(it.stb()))
	return nil
}

func (it *Interpreter) coreTstQ(c command) error {
	if err := params(c, 0, 0); err != nil {
		return err
	}
	it.replyInt(0)
	return nil
}

// ---- SYSTem / STATus ----

func (it *Interpreter) systemErrorNextQ(c command) error {
	if err := params(c, 0, 0); err != nil {
		return err
	}
	it.replyText(it.errs.pop().String())
	return nil
}

func (it *Interpreter) systemErrorCountQ(c command) error {
	if err := params(c, 0, 0); err != nil {
		return err
	}
	it.replyInt(int64(it.errs.len()))
	return nil
}

func (it *Interpreter) systemVersionQ(c command) error {
	if err := params(c, 0, 0); err != nil {
		return err
	}
	it.replyText(Version)
	return nil
}

// The event register is cleared by reading it.
func (it *Interpreter) statusQuesEventQ(c command) error {
	if err := params(c, 0, 0); err != nil {
		return err
	}
	it.replyInt(int64(it.quesEv))
	it.quesEv = 0
	return nil
}

func (it *Interpreter) statusQuesEnable(c command) error {
	if err := params(c, 1, 1); err != nil {
		return err
	}
	v, err := paramUint(c.params[0], 65535)
	if err != nil {
		return err
	}
	it.quesEn = uint16(v)
	return nil
}

func (it *Interpreter) statusQuesEnableQ(c command) error {
	if err := params(c, 0, 0); err != nil {
		return err
	}
	it.replyInt(int64(it.quesEn))
	return nil
}

func (it *Interpreter) statusPreset(c command) error {
	if err := params(c, 0, 0); err != nil {
		return err
	}
	it.quesEn = 0
	return nil
}

// ---- ROUTe ----

func (it *Interpreter) routeConnect(c command) error {
	if err := params(c, 1, 1); err != nil {
		return err
	}
	p, err := paramPath(c.params[0])
	if err != nil {
		return err
	}
	return it.cfg.Router.Connect(p.A, p.B)
}

func (it *Interpreter) routeDisconnect(c command) error {
	if err := params(c, 1, 1); err != nil {
		return err
	}
	p, err := paramPath(c.params[0])
	if err != nil {
		return err
	}
	return it.cfg.Router.Disconnect(p.A, p.B)
}

// ROUTe:CONNect? lists live paths; with a path, that path if live; with
// ALL, every path the matrix supports.
func (it *Interpreter) routeConnectQ(c command) error {
	if err := params(c, 0, 1); err != nil {
		return err
	}
	var filter *types.Path
	if len(c.params) == 1 {
		s, err := unquote(c.params[0])
		if err != nil {
			return err
		}
		if strings.EqualFold(s, "ALL") {
			it.replyString(joinPaths(it.cfg.Router.Matrix().Paths()))
			return nil
		}
		p, err := types.ParsePath(s)
		if err != nil {
			return err
		}
		filter = &p
	}
	live, err := it.cfg.Router.Query(filter)
	if err != nil {
		return err
	}
	it.replyString(joinPaths(live))
	return nil
}

func (it *Interpreter) routeOpenAll(c command) error {
	if err := params(c, 0, 0); err != nil {
		return err
	}
	it.cfg.Router.DisconnectAll()
	return nil
}

func (it *Interpreter) routeIdleQ(c command) error {
	if err := params(c, 0, 0); err != nil {
		return err
	}
	if it.cfg.Router.IsIdle() {
		it.replyInt(1)
	} else {
		it.replyInt(0)
	}
	return nil
}

// ROUTe:SWITch:STATe? reports the read-back pin of every device, A..G.
func (it *Interpreter) routeSwitchStateQ(c command) error {
	if err := params(c, 0, 0); err != nil {
		return err
	}
	st := it.cfg.Router.States()
	pins := make([]string, len(st))
	for i, s := range st {
		pins[i] = s.Pin
	}
	it.replyText(strings.Join(pins, ","))
	return nil
}

// ROUTe:ATTenuation? <path>[,<freq>] returns the whole table, or the two
// grid points around freq as f0,a0,f1,a1.
func (it *Interpreter) routeAttenuationQ(c command) error {
	if err := params(c, 1, 2); err != nil {
		return err
	}
	p, err := paramPath(c.params[0])
	if err != nil {
		return err
	}
	if len(c.params) == 1 {
		tab, ok := it.cfg.Loss.TableFor(p.A, p.B)
		if !ok {
			return Error{Code: ErrInvalidCharData, Info: "Unsupported connection"}
		}
		it.next()
		for i, v := range tab {
			if i > 0 {
				it.reply.WriteByte(',')
			}
			it.reply.WriteString(strconv.FormatUint(uint64(v), 10))
		}
		return nil
	}
	f, err := parseInt64(c.params[1])
	if err != nil {
		return err
	}
	b, err := it.cfg.Loss.QueryPoint(p.A, p.B, f)
	if err != nil {
		return err
	}
	it.replyInts(b.Lo.FrequencyHz, int64(b.Lo.Loss), b.Hi.FrequencyHz, int64(b.Hi.Loss))
	return nil
}

func (it *Interpreter) attFrequencyStartQ(c command) error {
	if err := params(c, 0, 0); err != nil {
		return err
	}
	it.replyInt(it.cfg.Loss.Grid().Base)
	return nil
}

func (it *Interpreter) attFrequencyStepQ(c command) error {
	if err := params(c, 0, 0); err != nil {
		return err
	}
	it.replyInt(it.cfg.Loss.Grid().Step)
	return nil
}

func (it *Interpreter) attFrequencyPointsQ(c command) error {
	if err := params(c, 0, 0); err != nil {
		return err
	}
	it.replyInt(int64(it.cfg.Loss.Grid().Count))
	return nil
}

func joinPaths(ps []types.Path) string {
	var b strings.Builder
	for i, p := range ps {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(p.String())
	}
	return b.String()
}
