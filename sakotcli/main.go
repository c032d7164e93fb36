package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/go-ini/ini"
	"github.com/npillmayer/sakot"
	"github.com/npillmayer/sakot/script"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'sakot.cli'
func tracer() tracing.Trace {
	return tracing.Select("sakot.cli")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.sakot":     "Info",
		"trace.sakot.cli": "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	preffile := flag.String("pref", "", "Spelling preference profile (INI file)")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError) // will set the correct level later
	pterm.Info.Println("Welcome to the Thai spelling CLI")
	//
	// set up REPL
	repl, err := readline.New("sakot > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	pref := sakot.DefaultPref()
	if *preffile != "" {
		if pref, err = loadPrefProfile(*preffile); err != nil {
			tracer().Errorf(err.Error())
			os.Exit(4)
		}
	}
	intp := &Intp{repl: repl, pref: pref}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D")
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// loadPrefProfile reads a spelling preference profile from the [spelling]
// section of an INI file. Unset keys keep their defaults.
func loadPrefProfile(path string) (sakot.Pref, error) {
	pref := sakot.DefaultPref()
	cfg, err := ini.Load(path)
	if err != nil {
		return pref, fmt.Errorf("cannot load preference profile: %w", err)
	}
	sec := cfg.Section("spelling")
	pref.ClearVowel = sec.Key("clear_vowel").MustBool(pref.ClearVowel)
	pref.ClearVowelOnset = sec.Key("clear_vowel_onset").MustString(pref.ClearVowelOnset)
	pref.ClearVowelToneMark = sec.Key("clear_vowel_tone_mark").MustBool(pref.ClearVowelToneMark)
	pref.SplitTrueCluster = sec.Key("split_true_cluster").MustBool(pref.SplitTrueCluster)
	pref.SplitFalseCluster = sec.Key("split_false_cluster").MustBool(pref.SplitFalseCluster)
	pref.SplitLeadingCon = sec.Key("split_leading_con").MustBool(pref.SplitLeadingCon)
	pref.ObviousLowSingles = sec.Key("obvious_low_singles").MustBool(pref.ObviousLowSingles)
	pref.ObviousHLowSingle = sec.Key("obvious_h_low_single").MustBool(pref.ObviousHLowSingle)
	pref.OnsetStyle = sec.Key("onset_style").MustString(pref.OnsetStyle)
	pref.OnsetStyleApply = sec.Key("onset_style_apply").MustString(pref.OnsetStyleApply)
	pref.SilentBeforeStyle = sec.Key("silent_before_style").MustString(pref.SilentBeforeStyle)
	pref.CodaStyle = sec.Key("coda_style").MustString(pref.CodaStyle)
	pref.SilentAfterStyle = sec.Key("silent_after_style").MustString(pref.SilentAfterStyle)
	pref.VowelNoCoda = sec.Key("vowel_no_coda").MustString(pref.VowelNoCoda)
	pref.VowelLength = sec.Key("vowel_length").MustString(pref.VowelLength)
	pref.LowSingleHThoo = sec.Key("low_single_h_thoo").MustBool(pref.LowSingleHThoo)
	return pref, nil
}

// Intp is our interpreter object
type Intp struct {
	repl *readline.Instance
	pref sakot.Pref
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.execute(line)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func (intp *Intp) execute(line string) (bool, error) {
	cmd, arg := line, ""
	if i := strings.IndexByte(line, ' '); i >= 0 {
		cmd, arg = line[:i], strings.TrimSpace(line[i+1:])
	}
	switch strings.ToLower(cmd) {
	case "quit":
		return true, nil
	case "help":
		printHelp()
		return false, nil
	case "letters":
		printLetters()
		return false, nil
	case "spell":
		return false, intp.spellOp(arg, false)
	case "data":
		return false, intp.spellOp(arg, true)
	case "tones":
		return false, intp.tonesOp(arg)
	case "ipa":
		return false, intp.ipaOp(arg)
	case "read":
		return false, intp.readOp(arg)
	case "homs":
		return false, intp.homsOp(arg)
	}
	printHelp()
	return false, nil
}

func printHelp() {
	pterm.Println("Commands:")
	pterm.Println("   spell <syllable>   spell from parts, e.g. spell ข+เอีย+น")
	pterm.Println("   data <syllable>    spell and show all derived data")
	pterm.Println("   tones <syllable>   spell in all five tones")
	pterm.Println("   ipa <syllable>     pronunciation (IPA and RTGS)")
	pterm.Println("   read <word>        decompose a written syllable")
	pterm.Println("   homs <syllable>    homophones")
	pterm.Println("   letters            list consonants, vowels and clusters")
	pterm.Println("   quit")
	pterm.Println("Syllable parts are joined with '+': onset+vowel[+coda][+tone],")
	pterm.Println("silent letters carry a trailing ์, e.g. สม+อุ+ท+ร์+-1")
}

func printLetters() {
	var b strings.Builder
	for _, r := range script.Consonants() {
		b.WriteRune(r)
		b.WriteByte(' ')
	}
	pterm.Printf("Consonants: %s\n", b.String())
	pterm.Printf("Vowels: %s\n", strings.Join(script.Vowels(), " "))
	pterm.Printf("True clusters: %s\n", strings.Join(script.TrueClusters(), " "))
}

// parseSyllable reads the '+'-joined parts notation: onset, vowel, then in
// any order a coda, kaaran-marked silent groups and a tone number.
func parseSyllable(arg string) (sakot.Input, error) {
	parts := strings.Split(arg, "+")
	if len(parts) < 2 {
		return sakot.Input{}, fmt.Errorf("need at least onset+vowel, got %q", arg)
	}
	in := sakot.Input{Onset: parts[0], Vowel: parts[1], Tone: sakot.ToneUnspecified}
	for _, part := range parts[2:] {
		if part == "" {
			continue
		}
		if n, err := strconv.Atoi(part); err == nil {
			in.Tone = n
			continue
		}
		if strings.HasSuffix(part, string(script.Kaaran)) {
			silent := strings.TrimSuffix(part, string(script.Kaaran))
			if in.Coda == "" {
				in.SilentBefore = silent
			} else {
				in.SilentAfter = silent
			}
			continue
		}
		in.Coda = part
	}
	return in, nil
}

func (intp *Intp) spellOp(arg string, full bool) error {
	in, err := parseSyllable(arg)
	if err != nil {
		return err
	}
	syl, err := sakot.Spell(in, &intp.pref)
	if err != nil {
		return err
	}
	pterm.Printf("%s\n", syl.Form())
	if !full {
		return nil
	}
	data := pterm.TableData{{"property", "value"}}
	for _, key := range []string{"onset", "onset_main", "onset_class", "vowel",
		"vowel_length", "coda", "coda_class", "silent_before", "silent_after",
		"tone", "tone_realized", "tone_mark", "is_checked", "ipa", "rtgs"} {
		data = append(data, []string{key, fmt.Sprint(syl.Data()[key])})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func (intp *Intp) tonesOp(arg string) error {
	in, err := parseSyllable(arg)
	if err != nil {
		return err
	}
	syl, err := sakot.Spell(in, &intp.pref)
	if err != nil {
		return err
	}
	tones := syl.AllTones()
	data := pterm.TableData{{"tone", "form"}}
	names := []string{"mid", "low", "falling", "high", "rising"}
	for tone, form := range tones {
		if form == "" {
			form = "(not possible)"
		}
		data = append(data, []string{names[tone], form})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func (intp *Intp) ipaOp(arg string) error {
	in, err := parseSyllable(arg)
	if err != nil {
		return err
	}
	syl, err := sakot.Spell(in, &intp.pref)
	if err != nil {
		return err
	}
	pterm.Printf("%s  [%s]  %s\n", syl.Form(), syl.IPA(), syl.RTGS())
	return nil
}

func (intp *Intp) readOp(arg string) error {
	d, ok := sakot.Decompose(arg)
	if !ok {
		return fmt.Errorf("cannot analyze %q", arg)
	}
	data := pterm.TableData{
		{"part", "value"},
		{"onset", d.Input.Onset},
		{"vowel", d.Input.Vowel},
		{"silent before", d.Input.SilentBefore},
		{"coda", d.Input.Coda},
		{"silent after", d.Input.SilentAfter},
		{"tone", fmt.Sprint(d.Input.Tone)},
		{"tone mark", d.Detail.ToneMark.String()},
		{"leading h", fmt.Sprint(d.Detail.LeadingH)},
		{"vowel form", d.Detail.VowelForm},
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func (intp *Intp) homsOp(arg string) error {
	in, err := parseSyllable(arg)
	if err != nil {
		return err
	}
	syl, err := sakot.Spell(in, &intp.pref)
	if err != nil {
		return err
	}
	pterm.Printf("%s\n", strings.Join(syl.Homophones(), " "))
	return nil
}
