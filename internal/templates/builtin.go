package templates

const fence = "```"

func simpleTemplate() *Template {
	return &Template{
		Name:        "simple",
		Description: "Minimalist README for small projects",
		Source:      SourceBuiltin,
		Content: `# {{projectName}}

{{description}}

## Installation

` + fence + `bash
npm install {{projectName}}
` + fence + `

## Usage

` + fence + `javascript
const {{projectName}} = require('{{projectName}}');

// Your code here
` + fence + `

## Contributing

Contributions are welcome! Please feel free to submit a Pull Request.

## License

MIT © {{year}} {{author}}
`,
	}
}

func advancedTemplate() *Template {
	return &Template{
		Name:        "advanced",
		Description: "Comprehensive README with all sections",
		Source:      SourceBuiltin,
		Content: `# {{projectName}}

<div align="center">

  ![Build Status](https://github.com/{{repoPath}}/workflows/CI/badge.svg)
  ![License](https://img.shields.io/badge/license-MIT-green.svg)
  ![npm version](https://img.shields.io/npm/v/{{projectName}}.svg)

</div>

## 📖 About

{{description}}

## ✨ Features

- 🚀 Fast and lightweight
- 📦 Easy to use
- 🔧 Highly configurable
- 📝 Well documented
- ✅ Fully tested

## 🚀 Quick Start

### Installation

` + fence + `bash
# Using npm
npm install {{projectName}}

# Using yarn
yarn add {{projectName}}

# Using pnpm
pnpm add {{projectName}}
` + fence + `

### Usage

` + fence + `javascript
import {{projectName}} from '{{projectName}}';

// Basic usage
const result = {{projectName}}.init({
  // your configuration
});
` + fence + `

## 📚 Documentation

For detailed documentation, visit [our wiki]({{repoLink}}/wiki).

## 🤝 Contributing

Contributions, issues and feature requests are welcome!

Feel free to check [issues page]({{repoLink}}/issues). You can also take a look at the [contributing guide](CONTRIBUTING.md).

### Development Setup

1. Fork the repo
2. Clone your fork
3. Install dependencies
   ` + fence + `bash
   npm install
   ` + fence + `
4. Create a branch
   ` + fence + `bash
   git checkout -b feature/amazing-feature
   ` + fence + `
5. Make your changes
6. Run tests
   ` + fence + `bash
   npm test
   ` + fence + `
7. Commit and push
8. Open a Pull Request

## 🗺️ Roadmap

- [x] Initial release
- [x] Core functionality
- [ ] Enhanced features
- [ ] Performance improvements
- [ ] Extended documentation

See the [open issues]({{repoLink}}/issues) for a full list of proposed features.

## ⭐ Show your support

Give a ⭐️ if this project helped you!

## 📝 License

Copyright © {{year}} [{{author}}]({{repoLink}}).

This project is [MIT](LICENSE) licensed.

## 👤 Author

**{{author}}**

- GitHub: [@{{authorHandle}}](https://github.com/{{authorHandle}})

## 🙏 Acknowledgments

- Thanks to all contributors
- Inspired by amazing open source projects
`,
	}
}
