package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cours-de-latin/lingua"
)

func (c *cli) langsCmd() *cobra.Command {
	var service string
	cmd := &cobra.Command{
		Use:   "langs",
		Short: "List the languages registered for a service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := c.registry()
			if err != nil {
				return err
			}
			for _, code := range reg.Languages(service) {
				fmt.Fprintln(cmd.OutOrStdout(), code)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&service, "service", lingua.ServiceInfo, "service: Info, Lang, Morpho or Trans")
	return cmd
}

func (c *cli) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info LANG",
		Short: "Show language metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := c.registry()
			if err != nil {
				return err
			}
			info, err := reg.Info(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "code:   %s\n", info.Code)
			fmt.Fprintf(out, "name:   %s\n", info.Name)
			fmt.Fprintf(out, "orig:   %s\n", info.OrigName)
			if info.Family != "" {
				fmt.Fprintf(out, "family: %s\n", info.Family)
			}
			if info.Branch != "" {
				fmt.Fprintf(out, "branch: %s\n", info.Branch)
			}
			fmt.Fprintf(out, "dir:    %s\n", info.Dir)
			return nil
		},
	}
}

// inflectCmd builds conjugate and declense, which take one flag per
// grammatical category.
func (c *cli) inflectCmd(use, short string, kind lingua.PartOfSpeech) *cobra.Command {
	opts := make(map[string]*string)
	cmd := &cobra.Command{
		Use:   use + " WORD",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := c.morpho()
			if err != nil {
				return err
			}
			values := make(map[string]string, len(opts))
			for name, v := range opts {
				values[name] = *v
			}
			cats, err := lingua.ParseCategories(values)
			if err != nil {
				return err
			}

			var form string
			if kind == lingua.KindConjugation {
				form, err = m.Conjugate(args[0], cats)
			} else {
				form, err = m.DeclenseNoun(args[0], cats)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), form)
			return nil
		},
	}
	c.addLangFlag(cmd)
	for _, cat := range lingua.AllCategories() {
		name := cat.String()
		opts[name] = cmd.Flags().String(name, "", fmt.Sprintf("%s (%s)", name, strings.Join(cat.Values(), "|")))
	}
	return cmd
}

func (c *cli) derivateCmd() *cobra.Command {
	var src, dst string
	cmd := &cobra.Command{
		Use:   "derivate WORD",
		Short: "Derive a word of another part of speech",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := c.morpho()
			if err != nil {
				return err
			}
			from, err := lingua.ParsePartOfSpeech(src)
			if err != nil {
				return err
			}
			to, err := lingua.ParsePartOfSpeech(dst)
			if err != nil {
				return err
			}
			form, err := m.Derivate(args[0], from, to)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), form)
			return nil
		},
	}
	c.addLangFlag(cmd)
	cmd.Flags().StringVar(&src, "src", "", "source part of speech")
	cmd.Flags().StringVar(&dst, "dst", "", "target part of speech")
	_ = cmd.MarkFlagRequired("src")
	_ = cmd.MarkFlagRequired("dst")
	return cmd
}

func (c *cli) stemCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stem WORD...",
		Short: "Strip inflectional affixes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := c.morpho()
			if err != nil {
				return err
			}
			for _, w := range args {
				fmt.Fprintln(cmd.OutOrStdout(), m.Stem(w))
			}
			return nil
		},
	}
	c.addLangFlag(cmd)
	return cmd
}

func (c *cli) lemmatizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lemmatize WORD...",
		Short: "Print the dictionary form of words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := c.morpho()
			if err != nil {
				return err
			}
			for _, w := range args {
				fmt.Fprintln(cmd.OutOrStdout(), m.Lemmatize(w))
			}
			return nil
		},
	}
	c.addLangFlag(cmd)
	return cmd
}

func (c *cli) numberCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "number N...",
		Short: "Spell numbers out in words (put -- before negative numbers)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := c.registry()
			if err != nil {
				return err
			}
			lang, err := reg.Lang(c.lang)
			if err != nil {
				return err
			}
			for _, arg := range args {
				n, err := strconv.Atoi(arg)
				if err != nil {
					return fmt.Errorf("number %q: %w", arg, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), lang.PronounceNumber(n))
			}
			return nil
		},
	}
	c.addLangFlag(cmd)
	return cmd
}

func (c *cli) schemesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schemes",
		Short: "List the transliteration schemes of a language",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := c.registry()
			if err != nil {
				return err
			}
			tr, err := reg.Trans(c.lang)
			if err != nil {
				return err
			}
			for _, name := range tr.AvailableMethods() {
				lossless, err := tr.Lossless(name)
				if err != nil {
					return err
				}
				kind := "lossy"
				if lossless {
					kind = "lossless"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, kind)
			}
			return nil
		},
	}
	c.addLangFlag(cmd)
	return cmd
}

func (c *cli) transCmd() *cobra.Command {
	var (
		scheme  string
		reverse bool
	)
	cmd := &cobra.Command{
		Use:   "trans TEXT",
		Short: "Transliterate text, or convert it back with -r",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := c.registry()
			if err != nil {
				return err
			}
			tr, err := reg.Trans(c.lang)
			if err != nil {
				return err
			}
			if scheme != "" {
				if err := tr.SetCurrentMethod(scheme); err != nil {
					return err
				}
			}
			out := tr.Transliterate(args[0])
			if reverse {
				out = tr.Untransliterate(args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
	c.addLangFlag(cmd)
	cmd.Flags().StringVarP(&scheme, "scheme", "s", "", "scheme name (default: the first one)")
	cmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "convert back to the native script")
	return cmd
}
