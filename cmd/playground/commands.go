package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/g-m-twostay/go-structs/Lists"
	"github.com/g-m-twostay/go-structs/Queues"
	"github.com/g-m-twostay/go-structs/Stacks"
	"github.com/g-m-twostay/go-structs/Trees"
	"github.com/g-m-twostay/go-structs/Tries"
)

// logging can be initialised once per process.
var loggingStarted bool

type playground struct {
	configPath string
	config     *Config
	log        *logger.L
}

func newRootCmd() *cobra.Command {
	p := new(playground)
	root := &cobra.Command{
		Use:           "playground",
		Short:         "Runs the data structure walkthroughs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return p.setup(cmd.Name())
		},
	}
	root.PersistentFlags().StringVar(&p.configPath, "config", "", "config file (default $HOME/"+configName+")")
	root.AddCommand(
		p.treeCmd("avl", "Builds an AVL tree", func() Trees.Tree[int] { return Trees.NewAVLTree[int]() }),
		p.treeCmd("bst", "Builds an unbalanced binary search tree", func() Trees.Tree[int] { return Trees.NewBSTree[int]() }),
		p.beveragesCmd(),
		p.stackCmd(),
		p.queueCmd(),
		p.listCmd(),
		p.autocompleteCmd(),
		p.configCmd(),
	)
	return root
}

func (p *playground) setup(command string) error {
	path := p.configPath
	if path == "" {
		var err error
		if path, err = defaultConfigPath(); err != nil {
			return fmt.Errorf("failed to locate config: %w", err)
		}
	}
	config, err := LoadConfig(path)
	if err != nil {
		return err
	}
	p.config = config
	if !loggingStarted {
		if err = logger.Initialise(config.Logging.configuration()); err != nil {
			return fmt.Errorf("failed to start logging: %w", err)
		}
		loggingStarted = true
	}
	p.log = logger.New("playground")
	p.log.Infof("command: %s config: %s", command, path)
	return nil
}

func stopLogging() {
	if loggingStarted {
		logger.Finalise()
		loggingStarted = false
	}
}

// treeCmd runs the insert, remove and query walkthrough on the tree made by newTree.
// Unset flags fall back to the avl section of the config.
func (p *playground) treeCmd(use, short string, newTree func() Trees.Tree[int]) *cobra.Command {
	var insert, remove, query []int
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("insert") {
				insert = p.config.AVL.Insert
			}
			if !flags.Changed("remove") {
				remove = p.config.AVL.Remove
			}
			if !flags.Changed("query") {
				query = p.config.AVL.Query
			}
			tree := newTree()
			runTree(cmd.OutOrStdout(), tree, insert, remove, query)
			if tree.Corrupt() {
				p.log.Criticalf("%s tree corrupt after insert: %v remove: %v", use, insert, remove)
				return fmt.Errorf("%s tree is corrupt", use)
			}
			p.log.Debugf("%s size: %d height: %d", use, tree.Size(), tree.Height())
			return nil
		},
	}
	cmd.Flags().IntSliceVar(&insert, "insert", nil, "values to insert, in order")
	cmd.Flags().IntSliceVar(&remove, "remove", nil, "values to remove after inserting")
	cmd.Flags().IntSliceVar(&query, "query", nil, "values to look up at the end")
	return cmd
}

func runTree(w io.Writer, tree Trees.Tree[int], insert, remove, query []int) {
	for _, v := range insert {
		tree.Insert(v)
	}
	for _, v := range remove {
		tree.Remove(v)
	}
	fmt.Fprintln(w, tree)
	fmt.Fprintf(w, "size: %d height: %d\n", tree.Size(), tree.Height())
	if mn, ok := tree.Minimum(); ok {
		mx, _ := tree.Maximum()
		fmt.Fprintf(w, "min: %d max: %d\n", mn, mx)
	}
	for _, q := range query {
		fmt.Fprintf(w, "contains %d: %t\n", q, tree.Contains(q))
	}
}

func beverages() *Trees.TreeNode[string] {
	tree := Trees.NewTreeNode("Beverages")
	hot, cold := Trees.NewTreeNode("hot"), Trees.NewTreeNode("cold")
	tea, soda := Trees.NewTreeNode("tea"), Trees.NewTreeNode("soda")
	tree.Add(hot, cold)
	hot.Add(tea, Trees.NewTreeNode("coffee"), Trees.NewTreeNode("cocoa"))
	cold.Add(soda, Trees.NewTreeNode("milk"))
	tea.Add(Trees.NewTreeNode("black"), Trees.NewTreeNode("green"), Trees.NewTreeNode("chai"))
	soda.Add(Trees.NewTreeNode("ginger ale"), Trees.NewTreeNode("bitter lemon"))
	return tree
}

func (p *playground) beveragesCmd() *cobra.Command {
	var search string
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Walks a general tree of beverages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			tree := beverages()
			var depth, level []string
			tree.ForEachDepthFirst(func(n *Trees.TreeNode[string]) { depth = append(depth, n.Value) })
			tree.ForEachLevelOrder(func(n *Trees.TreeNode[string]) { level = append(level, n.Value) })
			fmt.Fprintf(w, "depth first: %s\n", strings.Join(depth, ", "))
			fmt.Fprintf(w, "level order: %s\n", strings.Join(level, ", "))
			fmt.Fprint(w, tree)
			if search != "" {
				if n := Trees.Search(tree, search); n != nil {
					fmt.Fprintf(w, "found %s with %d children\n", n.Value, len(n.Children()))
				} else {
					fmt.Fprintf(w, "%s not found\n", search)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "value to search for")
	return cmd
}

func (p *playground) stackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stack [values...]",
		Short: "Pushes the values then pops them all",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			s := Stacks.MakeStack(args...)
			fmt.Fprintln(w, s)
			for !s.Empty() {
				v, err := s.Pop()
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "popped: %s\n", v)
			}
			return nil
		},
	}
}

func (p *playground) queueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "queue [values...]",
		Short: "Enqueues the values then dequeues them all",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			var q Queues.Queue[string] = Queues.MakeStackQueue[string]()
			for _, v := range args {
				q.Push(v)
			}
			for !q.Empty() {
				v, err := q.Pop()
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "dequeued: %s\n", v)
			}
			return nil
		},
	}
}

func (p *playground) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [values...]",
		Short: "Builds a linked list and empties it from both ends",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			l := Lists.MakeLinkedList(args...)
			fmt.Fprintln(w, l)
			for fromBack := true; !l.IsEmpty(); fromBack = !fromBack {
				var v string
				var err error
				if fromBack {
					v, err = l.RemoveLast()
				} else {
					v, err = l.Pop()
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "removed %s: %s\n", v, l)
			}
			return nil
		},
	}
}

func (p *playground) autocompleteCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "autocomplete <prefix>",
		Short: "Suggests dictionary words starting with prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := p.config.Autocomplete
			if !cmd.Flags().Changed("limit") {
				limit = c.Limit
			}
			a := Tries.NewAutocompleter(c.CacheTTL, c.CleanupInterval, c.Words...)
			s := a.Suggest(args[0], limit)
			p.log.Debugf("prefix: %q suggestions: %d of %d words", args[0], len(s), a.Count())
			for _, v := range s {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of suggestions, 0 for all")
	return cmd
}

func (p *playground) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Prints the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(p.config)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
